// Package locale holds the dashboard's label tables. Tables are embedded TOML
// files keyed by dotted identifiers, so adding a language is a data change.
package locale

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Locale identifies a supported display language.
type Locale string

const (
	English  Locale = "en"
	Japanese Locale = "ja"
)

// Default is used when no or an unknown locale is requested.
const Default = English

var languageNames = map[Locale]string{
	English:  "English",
	Japanese: "Japanese",
}

// Supported returns the supported locales in a stable order.
func Supported() []Locale {
	return []Locale{English, Japanese}
}

// Parse maps a user-supplied tag such as "ja", "JA" or "ja-JP" to a Locale,
// falling back to English.
func Parse(s string) Locale {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	l := Locale(s)
	if _, ok := languageNames[l]; ok {
		return l
	}
	return Default
}

// LanguageName returns the English name of the language, used in prompts.
func (l Locale) LanguageName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return languageNames[Default]
}

func (l Locale) String() string { return string(l) }

//go:embed catalog/*.toml
var catalogFS embed.FS

// Catalog resolves dotted keys to localized strings.
type Catalog struct {
	tables map[Locale]map[string]string
}

// LoadCatalog parses the embedded tables for every supported locale.
func LoadCatalog() (*Catalog, error) {
	c := &Catalog{tables: make(map[Locale]map[string]string)}
	for _, l := range Supported() {
		data, err := catalogFS.ReadFile("catalog/" + string(l) + ".toml")
		if err != nil {
			return nil, fmt.Errorf("failed to read %s catalog: %w", l, err)
		}
		table, err := parseTable(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s catalog: %w", l, err)
		}
		c.tables[l] = table
	}
	return c, nil
}

// MustLoadCatalog is LoadCatalog for package-level initialisation and tests.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func parseTable(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flatten("", raw, out)
	return out, nil
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// T returns the string for key in l, falling back to English and then to the key itself.
func (c *Catalog) T(l Locale, key string) string {
	if s, ok := c.tables[l][key]; ok {
		return s
	}
	if s, ok := c.tables[Default][key]; ok {
		return s
	}
	return key
}

// Has reports whether key exists in l's own table.
func (c *Catalog) Has(l Locale, key string) bool {
	_, ok := c.tables[l][key]
	return ok
}

// Label renders an enum literal for display. Unmapped values are returned verbatim.
func (c *Catalog) Label(l Locale, group, value string) string {
	if value == "" {
		return value
	}
	key := "enum." + group + "." + value
	if s, ok := c.tables[l][key]; ok {
		return s
	}
	if s, ok := c.tables[Default][key]; ok {
		return s
	}
	return value
}

// Keys returns every key defined for l, sorted.
func (c *Catalog) Keys(l Locale) []string {
	keys := make([]string, 0, len(c.tables[l]))
	for k := range c.tables[l] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Translator binds a catalog to one locale for template use.
type Translator struct {
	catalog *Catalog
	locale  Locale
}

// For returns a Translator for l.
func (c *Catalog) For(l Locale) Translator {
	return Translator{catalog: c, locale: l}
}

// T looks up key in the bound locale.
func (t Translator) T(key string) string { return t.catalog.T(t.locale, key) }

// Label renders an enum literal in the bound locale.
func (t Translator) Label(group, value string) string { return t.catalog.Label(t.locale, group, value) }

// Locale returns the bound locale.
func (t Translator) Locale() Locale { return t.locale }
