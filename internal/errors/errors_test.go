package errors

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP_Taxonomy(t *testing.T) {
	tests := []struct {
		err        error
		statusCode int
		code       string
	}{
		{ErrDuplicateEmail, http.StatusBadRequest, "DUPLICATE_EMAIL"},
		{ErrDuplicateSubject, http.StatusConflict, "DUPLICATE_SUBJECT"},
		{ErrProviderMismatch, http.StatusBadRequest, "PROVIDER_MISMATCH"},
		{ErrBadPassword, http.StatusBadRequest, "BAD_PASSWORD"},
		{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{ErrVerification, http.StatusUnauthorized, "VERIFICATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			he := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.statusCode, he.StatusCode)
			assert.Equal(t, tt.code, he.Code)
			assert.Equal(t, tt.err.Error(), he.Message)
		})
	}

	// wrapped sentinels still map to their kind
	he := MapErrorToHTTP(fmt.Errorf("login: %w", ErrBadPassword))
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, "BAD_PASSWORD", he.Code)
}

func TestMapErrorToHTTP_UnexpectedIsOpaqueButLogged(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	he := MapErrorToHTTP(errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, he.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", he.Code)
	// the caller-facing message never carries the internal detail
	assert.Equal(t, "internal server error", he.Message)
	assert.NotContains(t, he.ToErrorResponse().Error, "connection refused")
	// but the detail is logged server-side
	assert.Contains(t, buf.String(), "connection refused")
}
