package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *StandardError
		status int
		inBand bool
	}{
		{"upstream", NewUpstreamUnavailableError(500, nil), http.StatusOK, true},
		{"malformed", NewMalformedUpstreamPayloadError(errors.New("eof")), http.StatusOK, true},
		{"filter key", NewInvalidFilterKeyError("Foo"), http.StatusBadRequest, false},
		{"date value", NewInvalidDateValueError("bad", nil), http.StatusInternalServerError, false},
		{"missing value", NewMissingFieldValueError("Revenue"), http.StatusInternalServerError, false},
		{"query", NewInvalidQueryParameterError("min_revenue", "x", nil), http.StatusUnprocessableEntity, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus())
			assert.Equal(t, tt.inBand, tt.err.InBand())
		})
	}
}

func TestAs_WrappedError(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("fetch: %w", NewUpstreamUnavailableError(502, cause))

	se, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeUpstreamUnavailable, se.Code)
	assert.Equal(t, 502, se.StatusCode)
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, HasCode(wrapped, ErrCodeUpstreamUnavailable))
	assert.False(t, HasCode(errors.New("plain"), ErrCodeUpstreamUnavailable))
}

func TestStandardError_Message(t *testing.T) {
	err := NewInvalidFilterKeyError("Price")
	assert.Equal(t, `INVALID_FILTER_KEY: unknown sort field "Price"`, err.Error())
}
