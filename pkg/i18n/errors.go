package i18n

import "errors"

var (
	// ErrFailedToParseYAML is returned by ParseYAML when the input is not a
	// language -> key -> message mapping.
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")

	// ErrEmptyCatalog is returned by NewTranslator for a catalog without languages.
	ErrEmptyCatalog = errors.New("catalog has no languages")

	// ErrInvalidLanguage indicates a catalog language that is not a valid BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language code")

	// ErrDefaultLangMissing indicates the default language has no entry in the catalog.
	ErrDefaultLangMissing = errors.New("default language missing from catalog")
)
