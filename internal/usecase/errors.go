package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDuplicateKey  = errors.New("a record with the same unique value already exists")
	ErrMissingParent = errors.New("referenced record does not exist")
)

// isDuplicateKeyError reports a unique constraint violation from either
// supported database.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyError reports a foreign key violation from either supported
// database.
func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// translateError maps constraint violations to the package sentinels and
// returns any other error unchanged.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case isDuplicateKeyError(err):
		return ErrDuplicateKey
	case isForeignKeyError(err):
		return ErrMissingParent
	default:
		return err
	}
}
