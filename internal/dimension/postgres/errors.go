package postgres

import (
	"errors"
	"strings"

	"github.com/lmoreira/requerimento-service/internal"
	"gorm.io/gorm"
)

// TranslateError maps driver errors onto the API error taxonomy. The gorm
// drivers translate constraint failures when TranslateError is enabled; the
// string checks cover drivers that do not.
func TranslateError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := internal.IsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return internal.NewNotFoundError(resource+" not found", internal.ErrCodeDimensionNotFound).WithCause(err)
	case isDuplicateKey(err):
		return internal.NewDuplicateKeyError(resource).WithCause(err)
	case isForeignKeyViolation(err):
		return internal.NewDeleteRestrictedError(resource).WithCause(err)
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}
