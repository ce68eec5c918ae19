package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation checks whether an error is a unique constraint violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nullIfEmpty maps "" to SQL NULL so optional text columns stay NULL instead
// of accumulating empty strings in the hosted tables.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// like wraps a substring query for ILIKE matching.
func like(q string) string {
	return "%" + q + "%"
}
