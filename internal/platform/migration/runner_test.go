// Copyright (c) 2026 Pressroom. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/pressroom/internal/platform/migration"
)

/*
TestToPgx5DSN covers the scheme rewrites golang-migrate needs.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@db:5432/pressroom", "pgx5://u:p@db:5432/pressroom"},
		{"postgresql_scheme", "postgresql://db/pressroom?sslmode=disable", "pgx5://db/pressroom?sslmode=disable"},
		{"already_pgx5", "pgx5://db/pressroom", "pgx5://db/pressroom"},
		{"keyword_dsn", "host=db dbname=pressroom", "host=db dbname=pressroom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ToPgx5DSN(tt.dsn))
		})
	}
}
