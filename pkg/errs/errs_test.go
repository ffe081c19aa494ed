package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrConcurrentModification))
	assert.True(t, IsTransient(ErrStoreUnavailable))
	assert.True(t, IsTransient(fmt.Errorf("accruing owner 1: %w", ErrConcurrentModification)))

	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(ErrInsufficientBalance))
	assert.False(t, IsTransient(ErrLedgerNotFound))
	assert.False(t, IsTransient(errors.New("database error")))
}
