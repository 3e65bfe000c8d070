package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the project configuration read from .equality.yml.
// Relative paths are resolved against the directory holding the file.
type Config struct {
	// Data is the directory holding the record files.
	Data     string        `yaml:"data"`
	Patterns []string      `yaml:"patterns"`
	Output   string        `yaml:"output"`
	NFC      bool          `yaml:"nfc"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoadConfig reads ConfigFile from root. A missing file yields a zero Config.
func LoadConfig(root string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filepath.Join(root, ConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	cfg.Data = resolvePath(root, cfg.Data)
	cfg.Output = resolvePath(root, cfg.Output)
	return cfg, nil
}

// Options converts the configuration into functional options.
func (c Config) Options() []Option {
	var opts []Option
	if len(c.Patterns) > 0 {
		opts = append(opts, WithPatterns(c.Patterns...))
	}
	if c.Output != "" {
		opts = append(opts, WithOutput(c.Output))
	}
	if c.NFC {
		opts = append(opts, WithUnicodeNormalization(true))
	}
	if c.Debounce > 0 {
		opts = append(opts, WithDebounce(c.Debounce))
	}
	return opts
}

func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
