package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelyj/command-line-reporter/pkg/errors"
)

func TestDecoratePlain(t *testing.T) {
	out, err := Decorate("hello", "", false)

	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestDecorateUnknownColor(t *testing.T) {
	_, err := Decorate("hello", "chartreuse", false)

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
}

func TestDecorateKnownColors(t *testing.T) {
	for _, keyword := range Keywords() {
		out, err := Decorate("x", keyword, true)

		require.NoError(t, err, keyword)
		// Styled output must still contain the original text whether or
		// not the test terminal supports color.
		assert.Contains(t, out, "x", keyword)
	}
}

func TestDecorateCaseInsensitive(t *testing.T) {
	_, err := Decorate("x", "RED", false)

	assert.NoError(t, err)
	assert.True(t, IsKeyword("Red"))
	assert.False(t, IsKeyword("redd"))
}

func TestColorEnabledNonFile(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))
}

func TestUnicodeSupported(t *testing.T) {
	t.Run("utf8 locale", func(t *testing.T) {
		t.Setenv("LC_ALL", "en_US.UTF-8")
		assert.True(t, UnicodeSupported())
	})

	t.Run("ascii locale", func(t *testing.T) {
		t.Setenv("LC_ALL", "C")
		assert.False(t, UnicodeSupported())
	})

	t.Run("falls through to LANG", func(t *testing.T) {
		t.Setenv("LC_ALL", "")
		t.Setenv("LC_CTYPE", "")
		t.Setenv("LANG", "en_US.utf8")
		assert.True(t, UnicodeSupported())
	})
}
