package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	driverErr := errors.New("connection refused")

	assert.Equal(t, KindStorage, KindOf(StorageError("insert property", driverErr)))
	assert.Equal(t, KindNotConfigured, KindOf(fmt.Errorf("create: %w", ErrNotConfigured)))
	assert.Equal(t, KindValidation, KindOf(&ValidationError{Fields: []FieldError{{Field: "email"}}}))
	assert.Equal(t, KindInternal, KindOf(driverErr))

	assert.ErrorIs(t, StorageError("insert property", driverErr), driverErr)
	assert.Nil(t, StorageError("noop", nil))
	assert.Equal(t, "insert property: connection refused", StorageError("insert property", driverErr).Error())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "✅✅", Truncate("✅✅✅", 2))
}
