package dao

import (
	"aiwallet/aiwallet/utils/apperr"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PgErrUniqueViolation is the Postgres unique_violation code.
const PgErrUniqueViolation = "23505"

// translateErr turns driver-level unique violations into apperr.ErrConstraint.
func translateErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		(errors.As(err, &pgErr) && pgErr.Code == PgErrUniqueViolation) {
		return fmt.Errorf("%s: %w", op, errors.Join(apperr.ErrConstraint, err))
	}
	return fmt.Errorf("%s: %w", op, err)
}
