package database

import (
	"strings"

	"blogapi/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports duplicate-key failures from either driver.
// TranslateError covers both; the message checks catch errors raised before translation runs.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "unique constraint failed") || // SQLite
		strings.Contains(msg, "sqlstate 23505") // PostgreSQL unique_violation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "foreign key constraint failed") ||
		strings.Contains(msg, "sqlstate 23503")
}
