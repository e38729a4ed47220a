// Package sql provides conversions between database null types and the
// pointer-based optionals used in the domain.
package sql

import (
	"database/sql"
	"time"
)

// NullStringPtr converts sql.NullString to *string.
func NullStringPtr(value sql.NullString) *string {
	if value.Valid {
		result := value.String
		return &result
	}
	return nil
}

// NullTimePtr converts sql.NullTime to *time.Time.
func NullTimePtr(value sql.NullTime) *time.Time {
	if value.Valid {
		t := value.Time
		return &t
	}
	return nil
}

// PtrNullString converts *string to sql.NullString for binding.
func PtrNullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

// PtrNullTime converts *time.Time to sql.NullTime for binding.
func PtrNullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
