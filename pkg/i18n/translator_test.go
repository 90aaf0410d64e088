package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/itemdata/pkg/i18n"
)

const catalogYAML = `
es:
  greeting: "Hola %s"
  seller: "Vendedor %d"
  only_es: "solo español"
en:
  greeting: "Hello %s"
  seller: "Seller %d"
  plain: "no args"
`

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	c, err := i18n.ParseYAML([]byte(catalogYAML))
	require.NoError(t, err)
	tr, err := i18n.NewTranslator(c, opts...)
	require.NoError(t, err)
	return tr
}

func TestParseYAML(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := i18n.ParseYAML([]byte(catalogYAML))
		require.NoError(t, err)
		assert.Len(t, c, 2)
		assert.Equal(t, "Hola %s", c["es"]["greeting"])
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := i18n.ParseYAML([]byte("es: [unclosed"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := i18n.ParseYAML([]byte(""))
		assert.ErrorIs(t, err, i18n.ErrEmptyCatalog)
	})

	t.Run("language without messages", func(t *testing.T) {
		c, err := i18n.ParseYAML([]byte("es:\nen:\n  a: b\n"))
		require.NoError(t, err)
		assert.NotNil(t, c["es"])
	})
}

func TestNewTranslator(t *testing.T) {
	t.Run("default language must exist", func(t *testing.T) {
		c, err := i18n.ParseYAML([]byte(catalogYAML))
		require.NoError(t, err)
		_, err = i18n.NewTranslator(c, i18n.WithDefaultLanguage("de"))
		assert.ErrorIs(t, err, i18n.ErrDefaultLangMissing)
	})

	t.Run("invalid language code", func(t *testing.T) {
		_, err := i18n.NewTranslator(i18n.Catalog{"en": {}, "not a tag!": {}})
		assert.ErrorIs(t, err, i18n.ErrInvalidLanguage)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := i18n.NewTranslator(nil)
		assert.ErrorIs(t, err, i18n.ErrEmptyCatalog)
	})

	t.Run("languages default first", func(t *testing.T) {
		tr := newTranslator(t, i18n.WithDefaultLanguage("es"))
		assert.Equal(t, []string{"es", "en"}, tr.Languages())
	})
}

func TestTranslator_Match(t *testing.T) {
	tr := newTranslator(t, i18n.WithDefaultLanguage("es"))

	tests := []struct {
		in   string
		want string
	}{
		{"", "es"},
		{"en", "en"},
		{"es-AR", "es"},
		{"en-US", "en"},
		{"fr", "es"},
		{"%%%", "es"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.in))
		})
	}
}

func TestTranslator_T(t *testing.T) {
	tr := newTranslator(t, i18n.WithDefaultLanguage("es"))

	assert.Equal(t, "Hola MLA", tr.T("es", "greeting", "MLA"))
	assert.Equal(t, "Hello MLA", tr.T("en-GB", "greeting", "MLA"))
	assert.Equal(t, "no args", tr.T("en", "plain"))

	t.Run("numbers are localized", func(t *testing.T) {
		assert.Equal(t, "Vendedor 202.593.498", tr.T("es", "seller", 202593498))
		assert.Equal(t, "Seller 202,593,498", tr.T("en", "seller", 202593498))
	})

	t.Run("falls back to default language", func(t *testing.T) {
		assert.Equal(t, "solo español", tr.T("en", "only_es"))
	})

	t.Run("falls back to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
	})

	t.Run("has", func(t *testing.T) {
		assert.True(t, tr.Has("en", "plain"))
		assert.False(t, tr.Has("es", "plain"))
	})
}
