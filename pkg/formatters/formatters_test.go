package formatters

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelyj/command-line-reporter/pkg/errors"
)

// fakeSurface records every write so tests can assert on rendered output
type fakeSurface struct {
	bytes.Buffer
}

func (f *fakeSurface) Aligned(text string, opts Options) error {
	f.WriteString(text + "\n")
	return nil
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "nested", Canonicalize("Nested"))
	assert.Equal(t, "nested", Canonicalize("  NESTED  "))
	assert.Equal(t, "progress", Canonicalize("progress"))
}

func TestResolveBuiltins(t *testing.T) {
	for _, name := range []string{NestedName, ProgressName} {
		f, err := Resolve(name)

		require.NoError(t, err, name)
		assert.NotNil(t, f, name)
	}
}

func TestResolveReturnsSingleton(t *testing.T) {
	first, err := Resolve("nested")
	require.NoError(t, err)

	second, err := Resolve("Nested")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("bogus")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidFormatter))
	assert.Contains(t, err.Error(), "invalid formatter specified")
}

func TestRegister(t *testing.T) {
	t.Run("nil factory", func(t *testing.T) {
		err := Register("custom", nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
	})

	t.Run("duplicate builtin name", func(t *testing.T) {
		err := Register("nested", func() Formatter { return NewNested() })
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})

	t.Run("new name resolves", func(t *testing.T) {
		custom := NewProgress()
		require.NoError(t, Register("dotted", func() Formatter { return custom }))

		resolved, err := Resolve("Dotted")
		require.NoError(t, err)
		assert.Same(t, custom, resolved)
	})
}

func TestNames(t *testing.T) {
	names := Names()

	assert.Contains(t, names, "nested")
	assert.Contains(t, names, "progress")
}

func TestDecode(t *testing.T) {
	type target struct {
		Message string `report:"message"`
		Indent  int    `report:"indent"`
	}

	t.Run("applies defaults for absent keys", func(t *testing.T) {
		out := target{Message: "working", Indent: 2}
		require.NoError(t, Decode(Options{"indent": 4}, &out))

		assert.Equal(t, "working", out.Message)
		assert.Equal(t, 4, out.Indent)
	})

	t.Run("coerces numeric strings", func(t *testing.T) {
		out := target{}
		require.NoError(t, Decode(Options{"indent": "3"}, &out))

		assert.Equal(t, 3, out.Indent)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		out := target{}
		err := Decode(Options{"shadow": true}, &out)

		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
	})

	t.Run("rejects non-coercible values", func(t *testing.T) {
		out := target{}
		err := Decode(Options{"indent": "lots"}, &out)

		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
	})
}

func TestNestedFormat(t *testing.T) {
	t.Run("block wraps body with message and complete", func(t *testing.T) {
		s := &fakeSurface{}
		n := NewNested()

		err := n.Format(s, Options{"message": "copying"}, func() error {
			s.WriteString("body\n")
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, "copying\nbody\ncomplete\n", s.String())
	})

	t.Run("inner reports indent one level deeper", func(t *testing.T) {
		s := &fakeSurface{}
		n := NewNested()

		err := n.Format(s, Options{"message": "outer"}, func() error {
			return n.Format(s, Options{"message": "inner"}, nil)
		})

		require.NoError(t, err)
		assert.Equal(t, "outer\n  inner\n  complete\ncomplete\n", s.String())
		assert.Equal(t, 0, n.Depth())
	})

	t.Run("indent size option", func(t *testing.T) {
		s := &fakeSurface{}
		n := NewNested()

		err := n.Format(s, Options{}, func() error {
			return n.Format(s, Options{"message": "in", "indent_size": 4}, nil)
		})

		require.NoError(t, err)
		assert.Contains(t, s.String(), "    in\n")
	})

	t.Run("inline renders on one line", func(t *testing.T) {
		s := &fakeSurface{}
		n := NewNested()

		err := n.Format(s, Options{"message": "working", "type": "inline"}, nil)

		require.NoError(t, err)
		assert.Equal(t, "working...complete\n", s.String())
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		s := &fakeSurface{}
		err := NewNested().Format(s, Options{"type": "sideways"}, nil)

		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
		assert.Empty(t, s.String())
	})

	t.Run("unknown option rejected before output", func(t *testing.T) {
		s := &fakeSurface{}
		err := NewNested().Format(s, Options{"messge": "typo"}, nil)

		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
		assert.Empty(t, s.String())
	})

	t.Run("body error propagates after complete line", func(t *testing.T) {
		s := &fakeSurface{}
		bodyErr := errors.New(errors.ErrInternal, "boom")

		err := NewNested().Format(s, Options{}, func() error { return bodyErr })

		assert.ErrorIs(t, err, bodyErr)
		assert.Contains(t, s.String(), "complete\n")
	})
}

func TestNestedProgress(t *testing.T) {
	s := &fakeSurface{}
	n := NewNested()

	require.NoError(t, n.Progress(s, ""))
	require.NoError(t, n.Progress(s, "+"))

	assert.Equal(t, ".+", s.String())
}

func TestProgressFormat(t *testing.T) {
	t.Run("dots then newline", func(t *testing.T) {
		s := &fakeSurface{}
		p := NewProgress()

		err := p.Format(s, Options{}, func() error {
			for i := 0; i < 3; i++ {
				if err := p.Progress(s, ""); err != nil {
					return err
				}
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, "...\n", s.String())
	})

	t.Run("indicator option sticks on the instance", func(t *testing.T) {
		s := &fakeSurface{}
		p := NewProgress()

		err := p.Format(s, Options{"indicator": "*"}, func() error {
			return p.Progress(s, "")
		})

		require.NoError(t, err)
		assert.Equal(t, "*\n", s.String())
		assert.Equal(t, "*", p.Indicator())
	})

	t.Run("override applies to a single step", func(t *testing.T) {
		s := &fakeSurface{}
		p := NewProgress()

		require.NoError(t, p.Progress(s, "+"))
		require.NoError(t, p.Progress(s, ""))

		assert.Equal(t, "+.", s.String())
	})
}
