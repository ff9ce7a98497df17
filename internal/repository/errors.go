package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrLockWaitTimeout = 1205
)

// IsLockWaitTimeout reports whether err is an InnoDB lock wait timeout. The
// typed check covers the mysql driver; the message match is kept as a
// fallback for proxies that rewrap the error.
func IsLockWaitTimeout(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrLockWaitTimeout
	}
	return strings.Contains(err.Error(), "Lock wait timeout exceeded")
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrDuplicateEntry
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
