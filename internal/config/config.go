// Package config loads settings for the spirits command.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. built-in defaults
//  2. a YAML or TOML file (chosen by extension)
//  3. SPIRITS_* environment variables, e.g. SPIRITS_OUTPUT=json or
//     SPIRITS_PATTERNS="*.go,*_test.go"
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/armn3t/go-spirits"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "SPIRITS_"

// CharsetDefault selects spirits.DefaultCharset.
const CharsetDefault = "default"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputTOML = "toml"
)

// Config holds the command settings.
type Config struct {
	// Patterns is the pattern set used by map and best when none are given
	// on the command line.
	Patterns []string `koanf:"patterns"`
	// Output is one of text, json, yaml, toml.
	Output string `koanf:"output"`
	// Charset restricts the characters a pattern may contain. Empty disables
	// the check, "default" selects spirits.DefaultCharset, anything else is
	// the literal set of allowed characters.
	Charset string `koanf:"charset"`
	// Strict rejects patterns ending in an unescaped backslash.
	Strict bool `koanf:"strict"`
	// Parallel splits large candidate lists across CPUs.
	Parallel bool `koanf:"parallel"`
	// Verbosity is the default log verbosity, raised by -v flags.
	Verbosity int `koanf:"verbosity"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"patterns":  []string{},
		"output":    OutputText,
		"charset":   "",
		"strict":    false,
		"parallel":  false,
		"verbosity": 0,
	}
}

// Load builds a Config from defaults, the file at path (skipped when path is
// empty), and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that cannot be checked by decoding alone.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML, OutputTOML:
	default:
		return fmt.Errorf("invalid output format %q (want text, json, yaml or toml)", c.Output)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("invalid verbosity %d", c.Verbosity)
	}
	return nil
}

// Validator returns the pattern validator the settings ask for, or nil when
// patterns are not restricted.
func (c *Config) Validator() spirits.Validator {
	var vs []spirits.Validator
	switch c.Charset {
	case "":
	case CharsetDefault:
		vs = append(vs, spirits.ValidateCharset)
	default:
		vs = append(vs, spirits.Charset(c.Charset))
	}
	if c.Strict {
		vs = append(vs, spirits.RejectDanglingEscape)
	}
	if len(vs) == 0 {
		return nil
	}
	return spirits.All(vs...)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	}
	return nil, fmt.Errorf("unsupported config file %s (want .yaml, .yml or .toml)", path)
}

// envValue maps SPIRITS_OUTPUT to output and splits the comma separated
// pattern list.
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "patterns" {
		return key, splitList(value)
	}
	return key, value
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
