// Package i18n renders console messages from a YAML message catalog in the
// language the user asked for.
//
// The catalog is parsed with gopkg.in/yaml.v3. Language negotiation uses
// golang.org/x/text/language, so "es-AR" or "es_419" resolve to "es", and
// formatting goes through golang.org/x/text/message, which groups numbers per
// locale ("202.593.498" in Spanish, "202,593,498" in English).
//
// # Usage
//
//	catalog, err := i18n.ParseYAML(data)
//	if err != nil {
//	    return err
//	}
//	tr, err := i18n.NewTranslator(catalog, i18n.WithDefaultLanguage("es"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tr.T("es-AR", "item.inserted", it))
package i18n
