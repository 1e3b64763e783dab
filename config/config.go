// Package config loads typist settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hojdars/typist/layout"
	"github.com/hojdars/typist/prompt"
	"github.com/hojdars/typist/types"
	"github.com/hojdars/typist/wordbank"
)

// EnvPath names the environment variable that overrides ConfigPath.
const EnvPath = "TYPIST_CONFIG"

const DefaultMaxChars = 64

// Config holds the practice settings.
type Config struct {
	// Alphabet is the key set layouts permute.
	Alphabet string `toml:"alphabet"`

	// WordBank is a path to a word list. Empty means the built-in bank.
	WordBank string `toml:"word_bank"`

	// WordCount is the number of words in a generated prompt.
	WordCount int `toml:"word_count"`

	// MaxChars is the display line budget in characters.
	MaxChars int `toml:"max_chars"`

	// CaesarShift is the rotation used by caesar layouts.
	CaesarShift int `toml:"caesar_shift"`
}

func Default() *Config {
	return &Config{
		Alphabet:    types.DefaultAlphabet.String(),
		WordBank:    "",
		WordCount:   prompt.DefaultWordCount,
		MaxChars:    DefaultMaxChars,
		CaesarShift: layout.DefaultShift,
	}
}

// ConfigPath returns $TYPIST_CONFIG, or ~/.typist/config.toml.
func ConfigPath() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".typist", "config.toml")
	}
	return filepath.Join(home, ".typist", "config.toml")
}

// Load reads path on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open config, path=%s, err=%w", path, err)
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("cannot load config, path=%s, err=%w", path, err)
	}

	// relative word bank paths are relative to the config file
	if cfg.WordBank != "" && !filepath.IsAbs(cfg.WordBank) {
		cfg.WordBank = filepath.Join(filepath.Dir(path), cfg.WordBank)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file gives the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func Parse(reader io.Reader) (*Config, error) {
	cfg := Default()
	meta, err := toml.NewDecoder(reader).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding the toml failed, err=%w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown config keys, keys=%s", strings.Join(keys, ","))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Write(writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(c)
}

// Keys returns the configured alphabet.
func (c *Config) Keys() (types.Alphabet, error) {
	alpha, err := types.NewAlphabet(c.Alphabet)
	if err != nil {
		return types.Alphabet{}, fmt.Errorf("config: alphabet: %w", err)
	}
	return alpha, nil
}

// Words loads the configured word bank.
func (c *Config) Words() ([]string, error) {
	if c.WordBank == "" {
		return wordbank.Copy(), nil
	}

	file, err := os.Open(c.WordBank)
	if err != nil {
		return nil, fmt.Errorf("cannot open word bank, path=%s, err=%w", c.WordBank, err)
	}
	defer file.Close()

	return wordbank.Read(file)
}
