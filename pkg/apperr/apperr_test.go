package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
)

func TestNotFoundMessage(t *testing.T) {
	err := apperr.NotFound("Customer", "id", 42)
	assert.Equal(t, "Customer not found with id : '42'", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.False(t, errors.Is(err, apperr.ErrConflict))
}

func TestFromWrapsUnknownErrorsAsStore(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.From(fmt.Errorf("query: %w", cause))

	assert.Equal(t, apperr.KindStore, err.Kind)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.ErrorIs(t, err, cause)
}

func TestFromKeepsTypedErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", apperr.Conflict("email already registered"))
	err := apperr.From(wrapped)

	assert.Equal(t, apperr.KindConflict, err.Kind)
	assert.Equal(t, "email already registered", err.Message)
}

func TestStatusOf(t *testing.T) {
	cases := map[error]int{
		nil:                                    http.StatusOK,
		apperr.Validation(map[string]string{}): http.StatusBadRequest,
		apperr.BadRequest("bad date"):          http.StatusBadRequest,
		apperr.Unauthorized("no token"):        http.StatusUnauthorized,
		apperr.Forbidden("nope"):               http.StatusForbidden,
		apperr.Conflict("dup"):                 http.StatusConflict,
		errors.New("boom"):                     http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, apperr.StatusOf(err), "%v", err)
	}
}
