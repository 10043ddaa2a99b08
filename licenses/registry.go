// Package licenses provides the license registry collaborator: the table
// mapping canonical license identifiers to their URL and title, used to
// resolve a distribution's declared license into a portal license_id.
package licenses

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// License is one registry entry.
type License struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Register exposes the license table. Implementations must return a stable
// snapshot; profiles memoize the lookup maps they build from it for their
// whole lifetime.
type Register interface {
	Licenses() []License
}

// Static is an in-memory Register.
type Static struct {
	entries []License
}

// NewStatic returns a Register over the given entries.
func NewStatic(entries []License) *Static {
	return &Static{entries: entries}
}

// Licenses implements Register.
func (s *Static) Licenses() []License {
	return s.entries
}

// Load reads a JSON array of license entries.
func Load(r io.Reader) (*Static, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read license registry: %w", err)
	}
	var entries []License
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse license registry: %w", err)
	}
	return NewStatic(entries), nil
}

// LoadFile reads a JSON license registry from path.
func LoadFile(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open license registry: %w", err)
	}
	defer f.Close()
	return Load(f)
}
