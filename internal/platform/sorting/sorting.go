// Copyright (c) 2026 Pressroom. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sorting turns client-supplied sort parameters into a safe ORDER BY clause.

API field names never reach SQL directly: each entity declares an allowlist
mapping its JSON field names to column names, and anything outside it is
rejected as a validation error before a query is built.
*/
package sorting

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taibuivan/pressroom/internal/platform/validate"
)

// Direction is the ordering applied to a sort column.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection maps a case-insensitive token to a [Direction].
// Only "desc" selects [Desc]; every other token, including "", is [Asc].
func ParseDirection(token string) Direction {
	if strings.EqualFold(strings.TrimSpace(token), "desc") {
		return Desc
	}
	return Asc
}

// Fields maps API field names to column names for one entity.
type Fields map[string]string

// Names returns the allowed API field names in sorted order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Order is a resolved, SQL-safe ordering.
type Order struct {
	Column    string
	Direction Direction
}

// Resolve validates field against the allowlist and parses direction.
//
// An empty field falls back to "id". The returned error is a 400
// VALIDATION_ERROR naming the accepted fields.
func (f Fields) Resolve(param, field, direction string) (Order, error) {
	if field == "" {
		field = "id"
	}

	column, ok := f[field]
	if !ok {
		return Order{}, validate.RequiredError(param,
			fmt.Sprintf("Unknown sort field %q. Must be one of: %s", field, strings.Join(f.Names(), ", ")))
	}

	return Order{Column: column, Direction: ParseDirection(direction)}, nil
}

// Clause renders the ORDER BY body for a table alias. The id column is
// appended in the same direction so equal sort keys still reverse exactly.
func (o Order) Clause(alias, idColumn string) string {
	if o.Column == idColumn {
		return fmt.Sprintf("%s.%s %s", alias, o.Column, o.Direction)
	}
	return fmt.Sprintf("%s.%s %s, %s.%s %s", alias, o.Column, o.Direction, alias, idColumn, o.Direction)
}
