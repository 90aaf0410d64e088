package i18n

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage is used when no option overrides it.
const DefaultLanguage = "en"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used for unknown or unsupported requests.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// Translator renders catalog messages for a language.
// It is read-only after construction and safe for concurrent use.
type Translator struct {
	catalog     Catalog
	defaultLang string
	langs       []string
	tags        []language.Tag
	matcher     language.Matcher
}

// NewTranslator validates the catalog and builds a language matcher over its
// languages. The default language is always tried first when matching fails.
func NewTranslator(c Catalog, opts ...Option) (*Translator, error) {
	if len(c) == 0 {
		return nil, ErrEmptyCatalog
	}

	t := &Translator{catalog: c, defaultLang: DefaultLanguage}
	for _, opt := range opts {
		opt(t)
	}
	if _, ok := c[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLangMissing, t.defaultLang)
	}

	// The matcher falls back to its first tag, so the default goes first.
	t.langs = append(t.langs, t.defaultLang)
	for lang := range c {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	slices.Sort(t.langs[1:])

	for _, lang := range t.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidLanguage, lang, err)
		}
		t.tags = append(t.tags, tag)
	}
	t.matcher = language.NewMatcher(t.tags)
	return t, nil
}

// Languages returns the catalog languages, default first.
func (t *Translator) Languages() []string {
	return slices.Clone(t.langs)
}

// Match resolves a requested language ("es-AR", "en_US", "") to the closest
// catalog language.
func (t *Translator) Match(lang string) string {
	if lang == "" {
		return t.defaultLang
	}
	if _, ok := t.catalog[lang]; ok {
		return lang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// T renders key in lang. Arguments are applied with fmt verbs through a
// locale-aware printer, so numbers are grouped the way the language expects.
// Missing keys fall back to the default language, then to the key itself.
func (t *Translator) T(lang, key string, args ...any) string {
	lang = t.Match(lang)

	tmpl, ok := t.catalog[lang][key]
	if !ok {
		tmpl, ok = t.catalog[t.defaultLang][key]
		if !ok {
			return key
		}
	}
	if len(args) == 0 {
		return tmpl
	}
	return message.NewPrinter(t.tag(lang)).Sprintf(tmpl, args...)
}

// Has reports whether lang defines key, without fallback.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.catalog[lang][key]
	return ok
}

func (t *Translator) tag(lang string) language.Tag {
	idx := slices.Index(t.langs, lang)
	if idx < 0 {
		return t.tags[0]
	}
	return t.tags[idx]
}
