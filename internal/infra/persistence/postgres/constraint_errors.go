package postgres

import (
	"strings"

	"marketplace/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a unique constraint
// violation. When constraint is non-empty the error must also name that
// constraint, which lets callers tell apart multiple unique indexes on the
// same table.
func isUniqueConstraintViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}

	if constraint != "" && !strings.Contains(err.Error(), constraint) {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation
}
