package schema

import "strings"

// Qualified prefixes every column with a table alias ("m" -> "m.id, m.title").
func Qualified(alias string, columns []string) string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}
