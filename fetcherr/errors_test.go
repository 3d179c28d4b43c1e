package fetcherr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Builder(t *testing.T) {
	cause := errors.New("bad proxy")
	err := New().
		WithOp("fetch.New").
		WithKind(ErrEngineInit).
		WithMessage("engine could not be built").
		WithCause(cause)

	assert.Equal(t, "fetch.New", err.Op())
	assert.Equal(t, ErrEngineInit, err.Kind())
	assert.Equal(t, "engine could not be built", err.Message())
	assert.Equal(t, cause, err.Unwrap())

	assert.Contains(t, err.Error(), "op: fetch.New")
	assert.Contains(t, err.Error(), "kind: engine init error")
	assert.Contains(t, err.Error(), "msg: engine could not be built")
	assert.Contains(t, err.Error(), "cause: bad proxy")
}

func TestError_Is(t *testing.T) {
	cause := errors.New("underlying")
	err := New().WithKind(ErrConfiguration).WithCause(cause)

	assert.ErrorIs(t, err, ErrConfiguration)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrEngineInit)
}

func TestError_As(t *testing.T) {
	var target *Error
	err := error(New().WithKind(ErrConfiguration))

	assert.ErrorAs(t, err, &target)
	assert.Equal(t, ErrConfiguration, target.Kind())
}
