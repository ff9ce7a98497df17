package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsLockWaitTimeout(t *testing.T) {
	assert.False(t, IsLockWaitTimeout(nil))
	assert.False(t, IsLockWaitTimeout(errors.New("some other error")))

	typed := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded; try restarting transaction"}
	assert.True(t, IsLockWaitTimeout(typed))
	assert.True(t, IsLockWaitTimeout(fmt.Errorf("create post: %w", typed)))

	// proxy-rewrapped errors lose the type but keep the message
	assert.True(t, IsLockWaitTimeout(errors.New("Error 1205: Lock wait timeout exceeded; try restarting transaction")))

	deadlock := &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
	assert.False(t, IsLockWaitTimeout(deadlock))
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("some other error")))

	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKey(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: reactions.post_id")))
}
