// Package config reads and writes TOML config files for territory.
//
// The config file lives at ~/.config/territory/config.toml.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// defaultTopDocs is the number of top documents shown on a topic card.
const defaultTopDocs = 10

// Config is the top-level configuration structure.
type Config struct {
	Dataset DatasetConfig `toml:"dataset"`
	Editor  EditorConfig  `toml:"editor"`
	UI      UIConfig      `toml:"ui"`
}

// DatasetConfig holds the default dataset reference opened when the CLI
// is invoked without one.
type DatasetConfig struct {
	Path string `toml:"path"`
}

// EditorConfig holds external editor settings.
type EditorConfig struct {
	Command string `toml:"command"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	TopDocs int `toml:"top_docs"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			Command: "vim",
		},
		UI: UIConfig{
			TopDocs: defaultTopDocs,
		},
	}
}

// DefaultPath returns the platform-appropriate path to the config file.
// On most systems this is ~/.config/territory/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		// Fall back to HOME/.config on failure.
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "territory", "config.toml")
}

// Load reads the config from the default path.
// If the file does not exist, it returns a default Config (no error).
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the config from the given path.
// If the file does not exist, it returns a default Config (no error).
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// A zero or negative list length would render an empty card.
	if cfg.UI.TopDocs <= 0 {
		cfg.UI.TopDocs = defaultTopDocs
	}

	return cfg, nil
}

// Save writes the config to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultPath())
}

// SaveTo writes the config to the given path.
// It creates the parent directory with mode 0o700 and the file with mode 0o600.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
