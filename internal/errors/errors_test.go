package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error with cause",
			err:  NewParsingError("failed to parse row", fmt.Errorf("bad field count")),
			want: "[PARSING] failed to parse row: bad field count",
		},
		{
			name: "error without cause",
			err:  NewValidationError("zip_code column missing"),
			want: "[VALIDATION] zip_code column missing",
		},
		{
			name: "not found error",
			err:  NewNotFoundError("Regions.csv"),
			want: "[NOT_FOUND] Regions.csv not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewStorageError("failed to write cleaned dataset", cause)

	require.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, fmt.Errorf("stage 1: %w", err), &appErr)
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewEncodingError("all fallback encodings failed", errors.New("invalid byte"))
	err = err.WithContext("file", "Regions.csv").WithContext("encodings", []string{"utf-8", "latin-1", "cp1252"})

	assert.Equal(t, "Regions.csv", err.Context["file"])
	assert.Len(t, err.Context["encodings"], 3)
}

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
	}{
		{"parsing", NewParsingError("m", nil), ErrTypeParsing},
		{"storage", NewStorageError("m", nil), ErrTypeStorage},
		{"validation", NewValidationError("m"), ErrTypeValidation},
		{"encoding", NewEncodingError("m", nil), ErrTypeEncoding},
		{"config", NewConfigError("m", nil), ErrTypeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
		})
	}
}
