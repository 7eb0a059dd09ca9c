// Package config loads the optional drizzledoc.yaml project file found in
// the scan root. Absence of a config file is not an error; everything has a
// default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/drizzledoc/drizzledoc/internal/classify"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "drizzledoc.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "drizzledoc.yml"

// Config is the project-level configuration.
type Config struct {
	// Include holds glob patterns matched against schema file base names.
	Include []string `koanf:"include"`
	// Format is the default output format: markdown, json, or table.
	Format string `koanf:"format"`
	// Out is the default output path; empty means stdout.
	Out string `koanf:"out"`
	// MultiFile writes one document per source file under Out.
	MultiFile bool `koanf:"multi_file"`
	// Classifier overrides the classification heuristics.
	Classifier ClassifierConfig `koanf:"classifier"`
}

// ClassifierConfig overrides individual classification rules; zero values
// fall back to the defaults.
type ClassifierConfig struct {
	JunctionMarkers      []string `koanf:"junction_markers"`
	AuditNameHints       []string `koanf:"audit_name_hints"`
	ReferenceNameHints   []string `koanf:"reference_name_hints"`
	ReferenceColumnHints []string `koanf:"reference_column_hints"`
	MaxJunctionColumns   int      `koanf:"max_junction_columns"`
	MaxReferenceColumns  int      `koanf:"max_reference_columns"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Format: "markdown"}
}

// LoadFromDir loads a Config from the given directory, looking for
// drizzledoc.yaml or drizzledoc.yml. Returns the default config when no
// file is found.
func LoadFromDir(dir string) (*Config, error) {
	configPath := findConfigFile(dir)
	if configPath == "" {
		return Default(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	if cfg.Format == "" {
		cfg.Format = "markdown"
	}
	return cfg, nil
}

// DirFor returns the directory the config file is looked up in for a scan
// root: the root itself, or its parent when the root is a file.
func DirFor(root string) string {
	info, err := os.Stat(root)
	if err != nil || info.IsDir() {
		return root
	}
	return filepath.Dir(root)
}

// findConfigFile finds the config file in the given directory. Returns
// empty string if not found.
func findConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}

// Rules materializes the classification rules, applying overrides on top
// of the defaults.
func (c *Config) Rules() classify.Rules {
	rules := classify.DefaultRules()
	cc := c.Classifier
	if len(cc.JunctionMarkers) > 0 {
		rules.JunctionMarkers = cc.JunctionMarkers
	}
	if len(cc.AuditNameHints) > 0 {
		rules.AuditNameHints = cc.AuditNameHints
	}
	if len(cc.ReferenceNameHints) > 0 {
		rules.ReferenceNameHints = cc.ReferenceNameHints
	}
	if len(cc.ReferenceColumnHints) > 0 {
		rules.ReferenceColumnHints = cc.ReferenceColumnHints
	}
	if cc.MaxJunctionColumns > 0 {
		rules.MaxJunctionColumns = cc.MaxJunctionColumns
	}
	if cc.MaxReferenceColumns > 0 {
		rules.MaxReferenceColumns = cc.MaxReferenceColumns
	}
	return rules
}
