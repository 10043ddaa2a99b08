// Package config holds the site-wide options the mapping profiles consult.
//
// Options load from a YAML document (see Load) and fall back to defaults
// that match a stock portal. The struct is read-only after construction;
// profiles never mutate it.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the recognized option set.
type Config struct {
	// DefaultLocale drives language-tag preference when a predicate has
	// literals in several languages.
	DefaultLocale string `yaml:"default_locale"`

	// ExposeSubcatalogs enables source-catalog provenance extraction for
	// datasets that belong to a sub-catalog.
	ExposeSubcatalogs bool `yaml:"expose_subcatalogs"`

	// CleanTags passes parsed keywords through the tag munger.
	CleanTags bool `yaml:"clean_tags"`

	// NormalizeFormats replaces resolved distribution format labels with
	// the canonical entry from the format table.
	NormalizeFormats bool `yaml:"normalize_formats"`

	// DistributionLicenseFallback stamps the dataset-level license onto
	// distributions lacking their own, when that license is a valid
	// reference.
	DistributionLicenseFallback bool `yaml:"distribution_license_fallback"`

	// Site identity used as catalog-level defaults.
	SiteTitle       string `yaml:"site_title"`
	SiteDescription string `yaml:"site_description"`
	SiteURL         string `yaml:"site_url"`
}

// Default returns the option set of a stock portal.
func Default() *Config {
	return &Config{
		DefaultLocale:    "en",
		NormalizeFormats: true,
	}
}

// Load reads YAML from r over the defaults.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
	}
	return cfg, nil
}

// LoadFile reads YAML options from path over the defaults.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}
