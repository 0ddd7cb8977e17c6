package i18n

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed translations.yaml
var builtinTranslations []byte

// Catalog holds one key/value dictionary per language.
type Catalog struct {
	dicts map[Language]map[string]string
}

// NewCatalog builds a catalog from in-memory dictionaries.
func NewCatalog(dicts map[Language]map[string]string) *Catalog {
	c := &Catalog{dicts: make(map[Language]map[string]string, len(dicts))}
	for lang, d := range dicts {
		cp := make(map[string]string, len(d))
		for k, v := range d {
			cp[k] = v
		}
		c.dicts[lang] = cp
	}
	return c
}

// ParseCatalog decodes a YAML document of the form {lang: {key: value}}.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw map[Language]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid translations YAML: %w", err)
	}
	return NewCatalog(raw), nil
}

var builtinCatalog = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(builtinTranslations)
})

// Builtin returns the catalog embedded in the binary.
func Builtin() (*Catalog, error) {
	return builtinCatalog()
}

// Lookup returns the string for key in lang, then in Default, then the key
// itself when neither dictionary has it.
func (c *Catalog) Lookup(lang Language, key string) string {
	if v, ok := c.dicts[lang][key]; ok {
		return v
	}
	if v, ok := c.dicts[Default][key]; ok {
		return v
	}
	return key
}

// T binds Lookup to a single language.
func (c *Catalog) T(lang Language) func(key string) string {
	return func(key string) string { return c.Lookup(lang, key) }
}

// Has reports whether lang's own dictionary defines key.
func (c *Catalog) Has(lang Language, key string) bool {
	_, ok := c.dicts[lang][key]
	return ok
}
