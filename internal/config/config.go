// Package config loads the bridge-meta.toml project file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the project file looked up by Find.
const FileName = "bridge-meta.toml"

// Config is the decoded project file. Relative paths are resolved against
// the directory holding the file.
type Config struct {
	Path string `toml:"-"`
	Root string `toml:"-"`

	Metadata  MetadataConfig  `toml:"metadata"`
	Overrides OverridesConfig `toml:"overrides"`
	Semantic  SemanticConfig  `toml:"semantic"`
	Run       RunConfig       `toml:"run"`
	Log       LogConfig       `toml:"log"`
}

// MetadataConfig locates the binary metadata image.
type MetadataConfig struct {
	Image string `toml:"image"`
}

// OverridesConfig lists override documents in load order.
type OverridesConfig struct {
	Files []string `toml:"files"`
}

// SemanticConfig lists Go package patterns for the semantic model.
type SemanticConfig struct {
	Packages []string `toml:"packages"`
}

// RunConfig tunes the session.
type RunConfig struct {
	Jobs int `toml:"jobs"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `toml:"level"`
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}

// Load decodes the project file at path.
func Load(path string) (*Config, error) {
	var cfg Config

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if !meta.IsDefined("metadata", "image") || strings.TrimSpace(cfg.Metadata.Image) == "" {
		return nil, fmt.Errorf("%s: missing [metadata].image", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	cfg.Path = abs
	cfg.Root = filepath.Dir(abs)

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("%s: [log].level: %w", path, err)
	}

	if cfg.Run.Jobs < 0 {
		return nil, fmt.Errorf("%s: [run].jobs must not be negative", path)
	}

	return &cfg, nil
}

// ImagePath returns the metadata image path resolved against Root.
func (c *Config) ImagePath() string {
	return c.resolve(c.Metadata.Image)
}

// OverrideFiles returns the override documents resolved against Root, in order.
func (c *Config) OverrideFiles() []string {
	out := make([]string, len(c.Overrides.Files))
	for i, f := range c.Overrides.Files {
		out[i] = c.resolve(f)
	}

	return out
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Root == "" {
		return p
	}

	return filepath.Join(c.Root, filepath.FromSlash(p))
}

// ParseLevel maps a level name to slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
