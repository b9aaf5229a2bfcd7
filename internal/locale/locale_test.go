package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSet(t *testing.T) {
	s := DefaultSet()

	assert.Equal(t, []Tag{"hr", "sl", "rs"}, s.Tags())
	assert.Equal(t, Croatian, s.Default())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "hr,sl,rs (default hr)", s.String())
}

func TestNewSet(t *testing.T) {
	t.Run("default picks first tag", func(t *testing.T) {
		s, err := NewSet([]Tag{"en", "de"}, "")
		require.NoError(t, err)
		assert.Equal(t, Tag("en"), s.Default())
	})

	t.Run("explicit default", func(t *testing.T) {
		s, err := NewSet([]Tag{"en", "de"}, "de")
		require.NoError(t, err)
		assert.Equal(t, Tag("de"), s.Default())
		assert.True(t, s.Contains("en"))
		assert.False(t, s.Contains("fr"))
	})

	t.Run("errors", func(t *testing.T) {
		_, err := NewSet(nil, "")
		require.ErrorIs(t, err, ErrEmptySet)

		_, err = NewSet([]Tag{"en", ""}, "")
		require.ErrorIs(t, err, ErrEmptyTag)

		_, err = NewSet([]Tag{"en", "en"}, "")
		require.ErrorIs(t, err, ErrDuplicateTag)

		_, err = NewSet([]Tag{"en"}, "fr")
		require.ErrorIs(t, err, ErrUnknownFallback)
	})
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []Tag{"hr", "sl", "rs"}, ParseTags(" hr, sl ,rs,"))
	assert.Empty(t, ParseTags(""))
}

func TestRecord_Resolve(t *testing.T) {
	r := NewRecord()
	r.Set(Croatian, "Hello")
	r.Set(Slovenian, "")

	v, ok := r.Resolve(Slovenian, Croatian)
	assert.True(t, ok)
	assert.Equal(t, "", v, "present empty value wins over fallback")

	v, ok = r.Resolve(Serbian, Croatian)
	assert.True(t, ok)
	assert.Equal(t, "Hello", v)

	noDefault := NewRecord()
	noDefault.Set(Slovenian, "Pozdrav")

	_, ok = noDefault.Resolve(Serbian, Croatian)
	assert.False(t, ok, "fallback must not chain through other tags")
}
