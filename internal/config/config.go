package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/icon"
	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/paths"
	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/patch"
)

// Options holds global settings parsed from the "config" key.
type Options struct {
	Log     bool   `json:"log,omitempty"`      // record runs in the history DB
	IconDir string `json:"icon_dir,omitempty"` // icon output directory
	Letter  string `json:"letter,omitempty"`   // cover letter
	Font    string `json:"font,omitempty"`     // TTF path for the cover letter
	Sizes   []int  `json:"sizes,omitempty"`    // square icon sizes
}

// Config holds the top-level configuration: global options and patch rules.
type Config struct {
	Options Options      `json:"config"`
	Patches []patch.Rule `json:"patches,omitempty"`

	// Builtin is true when no config file was found and the compiled-in
	// defaults apply.
	Builtin bool `json:"-"`
}

// DefaultOptions returns the hardcoded values the original scripts used.
func DefaultOptions() Options {
	return Options{
		IconDir: icon.DefaultOutDir,
		Letter:  icon.DefaultLetter,
		Font:    icon.DefaultFontPath,
		Sizes:   append([]int(nil), icon.DefaultSizes...),
	}
}

// DefaultConfig returns a full built-in configuration.
func DefaultConfig() Config {
	return Config{
		Options: DefaultOptions(),
		Patches: patch.DefaultRules(),
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure. Go's
// json.Unmarshal merges into existing struct fields, so only values present
// in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	c.Options = DefaultOptions()
	c.Patches = patch.DefaultRules()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. storytool-config.json next to the running binary
//  3. storytool-config.json in paths.DataDir()
//
// A missing config file is not an error: the built-in defaults reproduce
// the original scripts exactly, so both commands work with no setup at all.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User data directory — the same place `storytool init` writes to.
	p := filepath.Join(paths.DataDir(), paths.ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return readConfig(p)
	}

	cfg := DefaultConfig()
	cfg.Builtin = true
	return cfg, nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
