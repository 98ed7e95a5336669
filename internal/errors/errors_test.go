package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      NewSchemaError("identifier column missing", nil),
			expected: "[SCHEMA] identifier column missing",
		},
		{
			name:     "error with cause",
			err:      NewLoadError("open input", fs.ErrNotExist),
			expected: "[LOAD] open input: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := NewLoadError("read csv", cause)

	assert.True(t, errors.Is(err, cause))

	var appErr *AppError
	require.True(t, errors.As(fmt.Errorf("run pipeline: %w", err), &appErr))
	assert.Equal(t, ErrTypeLoad, appErr.Type)
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("stage failed: %w", NewSchemaError("cannot cast column t0101 to numeric", nil))

	assert.True(t, IsType(err, ErrTypeSchema))
	assert.False(t, IsType(err, ErrTypeLoad))
	assert.False(t, IsType(errors.New("plain"), ErrTypeSchema))
}

func TestWithContext(t *testing.T) {
	err := NewSchemaError("identifier column missing", nil).
		WithContext("column", "tucaseid").
		WithContext("path", "data/atus.csv")

	assert.Equal(t, "tucaseid", err.Context["column"])
	assert.Equal(t, "data/atus.csv", err.Context["path"])
}
