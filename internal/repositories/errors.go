package repositories

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"taskboard/internal/apperrors"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func pgCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// classify maps driver errors onto the application taxonomy.
func classify(op string, err error, notFound string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(notFound)
	}
	return apperrors.Storage(op, err)
}
