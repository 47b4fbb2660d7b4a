package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrInvalidArgument, "bad alignment")

	assert.Equal(t, ErrInvalidArgument, err.Code)
	assert.Equal(t, "bad alignment", err.Message)
	assert.Equal(t, "[INVALID_ARGUMENT] bad alignment", err.Error())
	assert.Nil(t, err.Wrapped)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrInvalidFormatter, "no formatter named %q", "bogus")

	assert.Equal(t, `[INVALID_FORMATTER] no formatter named "bogus"`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		inner := fmt.Errorf("disk full")
		err := Wrap(inner, ErrWrite, "writing report line")

		assert.Equal(t, "[WRITE] writing report line: disk full", err.Error())
		assert.Equal(t, inner, errors.Unwrap(err))
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrWrite, "ignored"))
		assert.Nil(t, Wrapf(nil, ErrWrite, "ignored %d", 1))
	})
}

func TestIs(t *testing.T) {
	err := New(ErrPreconditionFailed, "title wider than width")

	assert.True(t, errors.Is(err, New(ErrPreconditionFailed, "other message")))
	assert.False(t, errors.Is(err, New(ErrInvalidArgument, "other code")))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrInvalidArgument, "unknown option %q", "shadow")

	assert.True(t, IsErrorCode(err, ErrInvalidArgument))
	assert.False(t, IsErrorCode(err, ErrPreconditionFailed))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrInvalidArgument))
	assert.False(t, IsErrorCode(nil, ErrInvalidArgument))
}

func TestIsErrorCodeWrapped(t *testing.T) {
	inner := New(ErrConfigParse, "bad toml")
	err := fmt.Errorf("loading defaults: %w", inner)

	assert.True(t, IsErrorCode(err, ErrConfigParse))
	assert.Equal(t, ErrConfigParse, GetErrorCode(err))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrInternal, GetErrorCode(New(ErrInternal, "boom")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrPreconditionFailed, "title wider than width").
		WithDetail("title", "TooLong").
		WithDetail("width", 3)

	details := GetErrorDetails(err)
	assert.Equal(t, "TooLong", details["title"])
	assert.Equal(t, 3, details["width"])
	assert.Nil(t, GetErrorDetails(fmt.Errorf("plain")))
}
