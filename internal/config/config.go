// Package config loads and validates the language profile table that drives
// an sdkgate run.
package config

// Config is the complete sdkgate configuration. It can be loaded from
// .sdkgate/config.yml with environment variable overrides.
type Config struct {
	// Root is the directory profile paths are resolved against.
	Root string `yaml:"root" mapstructure:"root"`

	// Profiles lists the language surfaces to extract, in report order.
	Profiles []Profile `yaml:"profiles" mapstructure:"profiles"`
}

// Profile describes how to extract operations from one language's generated
// source: where it lives, how declarations are recognized, which raw names to
// ignore, and which naming convention the language declares in. Profiles are
// immutable once loaded.
type Profile struct {
	ID        string   `yaml:"id" mapstructure:"id"`
	Language  string   `yaml:"language" mapstructure:"language"`
	Path      string   `yaml:"path" mapstructure:"path"`
	Patterns  []string `yaml:"patterns" mapstructure:"patterns"`
	Exclude   []string `yaml:"exclude" mapstructure:"exclude"`
	Naming    string   `yaml:"naming" mapstructure:"naming"`
	Canonical bool     `yaml:"canonical" mapstructure:"canonical"`
}

// Canonical returns the profile marked canonical plus the remaining profiles,
// preserving configured order among the targets.
func (c *Config) Canonical() (reference *Profile, targets []Profile) {
	for i := range c.Profiles {
		if c.Profiles[i].Canonical && reference == nil {
			reference = &c.Profiles[i]
			continue
		}
		targets = append(targets, c.Profiles[i])
	}
	return reference, targets
}

// Default returns the profile table for the standard generated-SDK layout.
func Default() *Config {
	return &Config{
		Root: ".",
		Profiles: []Profile{
			{
				ID:       "reference",
				Language: "javascript",
				Path:     "reference/api.js",
				Patterns: []string{
					`async\s+(\w+)\s*\((.*?)\)`,
					`(\w+)\s*:\s*async\s+function\s*\((.*?)\)`,
				},
				Exclude:   []string{"constructor"},
				Naming:    "camelCase",
				Canonical: true,
			},
			{
				ID:       "python",
				Language: "python",
				Path:     "dist/python/src/client.py",
				Exclude:  []string{"__init__"},
				Naming:   "snake_case",
			},
			{
				ID:       "typescript",
				Language: "typescript",
				Path:     "dist/typescript/src/index.ts",
				Exclude:  []string{"constructor"},
				Naming:   "camelCase",
			},
			{
				ID:       "java",
				Language: "java",
				Path:     "dist/java/src/main/java/Client.java",
				Exclude:  []string{"get*", "set*"},
				Naming:   "camelCase",
			},
			{
				ID:       "php",
				Language: "php",
				Path:     "dist/php/src/Client.php",
				Exclude:  []string{"__construct"},
				Naming:   "snake_case",
			},
			{
				ID:       "go",
				Language: "go",
				Path:     "dist/go/client.go",
				Naming:   "PascalCase",
			},
			{
				ID:       "dart",
				Language: "dart",
				Path:     "dist/dart/lib/client.dart",
				Patterns: []string{
					`(?m)^\s+Future<[^>]+>\s+([a-z][a-zA-Z0-9]*)\s*\(([^)]*)\)`,
				},
				Naming: "camelCase",
			},
		},
	}
}
