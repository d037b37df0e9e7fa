package repository

import (
	"errors"

	"github.com/lib/pq"
	apperrors "github.com/storekeeperhq/pos-platform/internal/errors"
)

// Postgres error codes the repositories translate. Anything else passes
// through untouched for the service layer to wrap.
const (
	pqUniqueViolation     = pq.ErrorCode("23505")
	pqForeignKeyViolation = pq.ErrorCode("23503")
	pqNotNullViolation    = pq.ErrorCode("23502")
	pqCheckViolation      = pq.ErrorCode("23514")
)

// mapConstraintError converts a driver-signaled constraint violation into the
// AppError taxonomy: unique violations become duplicate-entry conflicts,
// other column constraints become validation errors. The payload is not
// retryable either way, which is what separates these from plain database
// failures.
func mapConstraintError(err error, entity string) error {
	var pqErr *pq.Error

	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		return apperrors.DuplicateEntryError(entity + " already exists").WithDetail(pqErr.Detail).WithError(err)
	case pqForeignKeyViolation, pqNotNullViolation, pqCheckViolation:
		return apperrors.ValidationError(entity + " violates a data constraint").WithDetail(pqErr.Message).WithError(err)
	}

	return err
}
