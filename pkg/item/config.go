package item

// Config names the collection all items live in.
//
// DocumentType is the legacy mapping type of the collection. OpenSearch 2.x
// addresses every document through _doc, so it is only reported in logs.
type Config struct {
	Index        string `env:"ITEM_INDEX" envDefault:"itemdata"`
	DocumentType string `env:"ITEM_DOCUMENT_TYPE" envDefault:"item"`
	Refresh      string `env:"ITEM_REFRESH"` // "", "true", "false" or "wait_for"
}
