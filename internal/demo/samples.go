package demo

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/itemdata/pkg/i18n"
	"github.com/dmitrymomot/itemdata/pkg/item"
)

var (
	//go:embed samples.yaml
	samplesYAML []byte

	//go:embed messages.yaml
	messagesYAML []byte
)

// Samples returns the items the demo run works with.
func Samples() ([]item.Item, error) {
	return ParseSamples(samplesYAML)
}

// ParseSamples decodes a YAML list of items. The sequence needs at least two
// items and every item needs an ID.
func ParseSamples(data []byte) ([]item.Item, error) {
	var items []item.Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, errors.Join(ErrInvalidSamples, err)
	}
	if len(items) < 2 {
		return nil, fmt.Errorf("%w: need 2 items, got %d", ErrInvalidSamples, len(items))
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrInvalidSamples, i, err)
		}
	}
	return items, nil
}

// Messages returns the translator for the console lines.
func Messages(defaultLang string) (*i18n.Translator, error) {
	catalog, err := i18n.ParseYAML(messagesYAML)
	if err != nil {
		return nil, err
	}
	return i18n.NewTranslator(catalog, i18n.WithDefaultLanguage(defaultLang))
}
