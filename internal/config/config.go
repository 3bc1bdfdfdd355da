// Package config holds the tool configuration, loaded from a YAML file with
// sensible defaults. The Zotero API key is deliberately not part of the file;
// it comes from the ZOTERO_API_KEY environment variable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full reflib configuration.
type Config struct {
	// BibPath is the BibTeX export of the library.
	BibPath string `yaml:"bib_path"`
	// OutputDir receives the generated page and charts.
	OutputDir string `yaml:"output_dir"`

	Zotero ZoteroConfig `yaml:"zotero"`
	Charts ChartsConfig `yaml:"charts"`
}

// ZoteroConfig locates the upstream library.
type ZoteroConfig struct {
	LibraryType string `yaml:"library_type"` // "user" or "groups"
	LibraryID   string `yaml:"library_id"`
}

// ChartsConfig tunes chart generation.
type ChartsConfig struct {
	// TopK caps chart categories before the tail collapses into "Other".
	TopK int `yaml:"top_k"`
	// PieMax is the largest category count still drawn as a pie.
	PieMax int `yaml:"pie_max"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BibPath:   "library.bib",
		OutputDir: "docs",
		Zotero:    ZoteroConfig{LibraryType: "user"},
		Charts:    ChartsConfig{TopK: 12, PieMax: 9},
	}
}

// Load reads the config file at path, layered over defaults. A missing file
// is fine when path is empty (defaults apply); an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Charts.TopK <= 0 {
		cfg.Charts.TopK = 12
	}
	if cfg.Charts.PieMax <= 0 {
		cfg.Charts.PieMax = 9
	}
	return cfg, nil
}
