// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations(t *testing.T) {
	require.NoError(t, Initialize())

	t.Run("english message", func(t *testing.T) {
		got := T("en", KeyBookDeleted)
		assert.Equal(t, "Book and all associated files deleted successfully", got)
	})

	t.Run("hindi locale is loaded", func(t *testing.T) {
		got := T("hi", KeyBookDeleted)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, KeyBookDeleted, got)
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		assert.Equal(t, T("en", KeyBookNotFound), T("fr", KeyBookNotFound))
	})

	t.Run("unknown key returns the key", func(t *testing.T) {
		assert.Equal(t, "nope.missing", T("en", "nope.missing"))
	})

	t.Run("formatted message", func(t *testing.T) {
		got := T("en", KeyValidationInvalid, "owner_kind")
		assert.Contains(t, got, "owner_kind")
	})
}

func TestGetSupportedLanguages(t *testing.T) {
	require.NoError(t, Initialize())

	langs := GetSupportedLanguages()
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "hi")
}
