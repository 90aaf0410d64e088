package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Catalog maps a language code to its messages, keyed by message ID.
type Catalog map[string]map[string]string

// ParseYAML decodes a catalog laid out as one top-level mapping per language:
//
//	es:
//	  greeting: "Hola %s"
//	en:
//	  greeting: "Hello %s"
func ParseYAML(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(c) == 0 {
		return nil, ErrEmptyCatalog
	}
	for lang, msgs := range c {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty code", ErrInvalidLanguage)
		}
		if msgs == nil {
			c[lang] = map[string]string{}
		}
	}
	return c, nil
}
