package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hojdars/typist/assert"
	"github.com/hojdars/typist/types"
	"github.com/hojdars/typist/wordbank"
)

const sampleConfig = `
alphabet     = "abcdefghijklmnopqrstuvwxyz"
word_bank    = ""
word_count   = 220
max_chars    = 64
caesar_shift = 3
`

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, cfg.Alphabet, "abcdefghijklmnopqrstuvwxyz")
	assert.Equal(t, cfg.WordCount, 220)
	assert.Equal(t, cfg.MaxChars, 64)
	assert.Equal(t, cfg.CaesarShift, 3)
	assert.IsError(t, cfg.Validate())
	keys, err := cfg.Keys()
	assert.IsError(t, err)
	assert.Equal(t, keys.Len(), 26)
}

func TestKeys(t *testing.T) {
	cfg := Default()
	cfg.Alphabet = "abca"

	_, err := cfg.Keys()
	assert.Equal(t, errors.Is(err, types.ErrDuplicateRune), true)

	cfg.Alphabet = ""
	_, err = cfg.Keys()
	assert.Equal(t, errors.Is(err, types.ErrEmptyAlphabet), true)
}

func TestParse(t *testing.T) {
	t.Run("sample equals defaults", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader(sampleConfig))
		assert.IsError(t, err)
		assert.Equal(t, *cfg, *Default())
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader("max_chars = 40\n"))
		assert.IsError(t, err)
		assert.Equal(t, cfg.MaxChars, 40)
		assert.Equal(t, cfg.WordCount, 220)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := Parse(strings.NewReader("line_width = 40\n"))
		assert.HasError(t, err)
		assert.True(t, strings.Contains(err.Error(), "line_width"), "error names the key")
	})

	t.Run("every bad field is reported", func(t *testing.T) {
		_, err := Parse(strings.NewReader("alphabet = \"aab\"\nword_count = -1\nmax_chars = 0\n"))
		var errs ValidationErrors
		assert.Equal(t, errors.As(err, &errs), true)
		assert.Equal(t, len(errs), 3)
		assert.Equal(t, errs[0].Field, "alphabet")
		assert.Equal(t, errs[1].Field, "word_count")
		assert.Equal(t, errs[2].Field, "max_chars")
		assert.True(t, strings.HasPrefix(err.Error(), "config: alphabet: "), "message format")
	})

	t.Run("write then parse", func(t *testing.T) {
		cfg := Default()
		cfg.MaxChars = 72
		cfg.Alphabet = "asdfjkl;"

		var buffer bytes.Buffer
		assert.IsError(t, cfg.Write(&buffer))

		got, err := Parse(&buffer)
		assert.IsError(t, err)
		assert.Equal(t, *got, *cfg)
		keys, err := got.Keys()
		assert.IsError(t, err)
		assert.Equal(t, keys.Len(), 8)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("relative word bank is resolved next to the config", func(t *testing.T) {
		err := os.WriteFile(filepath.Join(dir, "words.txt"), []byte("alpha\nbeta\n"), 0o644)
		assert.IsError(t, err)
		path := filepath.Join(dir, "config.toml")
		err = os.WriteFile(path, []byte("word_bank = \"words.txt\"\n"), 0o644)
		assert.IsError(t, err)

		cfg, err := Load(path)
		assert.IsError(t, err)
		assert.Equal(t, cfg.WordBank, filepath.Join(dir, "words.txt"))

		words, err := cfg.Words()
		assert.IsError(t, err)
		assert.SliceEqual(t, words, []string{"alpha", "beta"})
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.toml"))
		assert.Equal(t, errors.Is(err, os.ErrNotExist), true)

		cfg, err := LoadOrDefault(filepath.Join(dir, "missing.toml"))
		assert.IsError(t, err)
		assert.Equal(t, *cfg, *Default())
	})

	t.Run("built-in bank", func(t *testing.T) {
		words, err := Default().Words()
		assert.IsError(t, err)
		assert.Equal(t, len(words), len(wordbank.Default))
	})
}

func TestConfigPath(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/typist.toml")
	assert.Equal(t, ConfigPath(), "/tmp/typist.toml")

	t.Setenv(EnvPath, "")
	assert.True(t, strings.HasSuffix(ConfigPath(), filepath.Join(".typist", "config.toml")), "default path")
}
