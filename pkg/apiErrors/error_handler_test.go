package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrMissingSession, http.StatusUnauthorized},
		{ErrInvalidRequest, http.StatusBadRequest},
		{ErrResourceNotFound, http.StatusNotFound},
		{ErrResourceConflict, http.StatusBadRequest},
		{ErrDatabaseOperation, http.StatusInternalServerError},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusFor(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidRequest, "Invalid data", []string{"type"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VAL_001", body["code"])
	assert.Equal(t, "Invalid data", body["error"])
	assert.Equal(t, []any{"type"}, body["details"])
}
