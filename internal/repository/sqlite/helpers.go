package sqlite

import (
	"database/sql"
	"strings"
)

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// searchCondition matches the query against name, author and description.
func searchCondition(query string) (string, []interface{}) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	return "(name LIKE ? OR author LIKE ? OR description LIKE ?)", []interface{}{pattern, pattern, pattern}
}
