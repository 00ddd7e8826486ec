package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_New(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "thing not found")

	err := reg.New(code)
	require.NotNil(t, err)
	assert.Equal(t, "TEST_NOT_FOUND", err.Code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "thing not found", err.Message)
}

func TestRegistry_RegisterTwiceReturnsOriginal(t *testing.T) {
	reg := NewRegistry("TEST")
	first := reg.Register("DUP", TypeConflict, http.StatusConflict, "first")
	second := reg.Register("DUP", TypeInternal, http.StatusInternalServerError, "second")

	assert.Equal(t, first, second)
	assert.Equal(t, "first", reg.New(second).Message)
}

func TestError_WithDetail(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("INVALID", TypeValidation, http.StatusBadRequest, "invalid input")

	err := reg.New(code).WithDetail("field", "name").WithDetail("record_id", "abc-123")

	assert.Equal(t, "name", err.Details["field"])
	assert.Contains(t, err.Error(), "record_id=abc-123")
	assert.Contains(t, err.Error(), "TEST_INVALID")
}

func TestError_NewIsFresh(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("INVALID", TypeValidation, http.StatusBadRequest, "invalid input")

	a := reg.New(code).WithDetail("k", "v")
	b := reg.New(code)

	assert.NotNil(t, a.Details)
	assert.Nil(t, b.Details)
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "failed to fetch records", TypeExternal)

	require.NotNil(t, err)
	assert.Equal(t, TypeExternal, err.Type)
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrap_PreservesErrxError(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "thing not found")
	original := reg.New(code)

	wrapped := Wrap(original, "outer message", TypeInternal)

	assert.Same(t, original, wrapped)
	assert.Equal(t, http.StatusNotFound, wrapped.HTTPStatus)
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing", TypeInternal))
}

func TestToHTTPResponse_OmitsCause(t *testing.T) {
	err := Wrap(errors.New("secret db detail"), "failed", TypeInternal).
		WithDetail("op", "list")

	resp := err.ToHTTPResponse()
	assert.Equal(t, "failed", resp.Message)
	assert.Equal(t, "list", resp.Details["op"])
	assert.NotContains(t, resp.Message, "secret db detail")
}
