// Package formats carries the canonical resource-format table used to
// normalize distribution format labels, mirroring the portal's stock
// format registry.
package formats

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"
)

// Format is one canonical entry.
type Format struct {
	// Name is the canonical short label, e.g. "CSV".
	Name string `json:"name"`
	// Label is the human-readable name, e.g. "Comma Separated Values File".
	Label string `json:"label"`
	// MediaType is the IANA media type, e.g. "text/csv".
	MediaType string `json:"media_type"`
	// Alternates are additional lookup keys (legacy labels, alias media
	// types).
	Alternates []string `json:"alternates,omitempty"`
}

//go:embed resource_formats.json
var formatData []byte

var (
	once     sync.Once
	registry map[string]Format
)

// lookupKeys returns every key an entry is findable under.
func (f Format) lookupKeys() []string {
	keys := []string{f.Name, f.Label, f.MediaType}
	return append(keys, f.Alternates...)
}

func buildRegistry() {
	var entries []Format
	if err := json.Unmarshal(formatData, &entries); err != nil {
		// The table is embedded at build time; a decode failure is a
		// packaging defect, not a runtime condition.
		panic("formats: embedded resource_formats.json is invalid: " + err.Error())
	}
	registry = make(map[string]Format, len(entries)*3)
	for _, entry := range entries {
		for _, key := range entry.lookupKeys() {
			if key == "" {
				continue
			}
			key = strings.ToLower(key)
			if _, taken := registry[key]; !taken {
				registry[key] = entry
			}
		}
	}
}

// Lookup resolves a media type or label to its canonical entry. Keys are
// matched case-insensitively.
func Lookup(key string) (Format, bool) {
	once.Do(buildRegistry)
	f, ok := registry[strings.ToLower(key)]
	return f, ok
}

// CanonicalLabel returns the canonical short label for a media type or
// label, or "" if the table has no entry.
func CanonicalLabel(key string) string {
	if f, ok := Lookup(key); ok {
		return f.Name
	}
	return ""
}
