package wordbank

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hojdars/typist/assert"
)

func TestDefault(t *testing.T) {
	if len(Default) < 100 {
		t.Errorf("default bank is too small, len=%d", len(Default))
	}
	for i, word := range Default {
		if word == "" || strings.ContainsAny(word, " \t") {
			t.Errorf("bad default word, index=%d, word=%q", i, word)
		}
	}

	words := Copy()
	words[0] = "changed"
	assert.Equal(t, Default[0], "the")
}

func TestRead(t *testing.T) {
	t.Run("words, comments and blank lines", func(t *testing.T) {
		input := "# practice words\nalpha beta\n\n  gamma\t delta \n# end\n"
		got, err := Read(strings.NewReader(input))
		assert.IsError(t, err)
		assert.SliceEqual(t, got, []string{"alpha", "beta", "gamma", "delta"})
	})

	t.Run("words are normalised to NFC", func(t *testing.T) {
		got, err := Read(strings.NewReader("cafe\u0301\n"))
		assert.IsError(t, err)
		assert.SliceEqual(t, got, []string{"caf\u00e9"})
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := Read(strings.NewReader("# nothing here\n\n"))
		assert.Equal(t, errors.Is(err, ErrEmptyBank), true)
	})
}

func TestSave(t *testing.T) {
	var writer bytes.Buffer

	err := Save(&writer, []string{"one", "two", "three"})
	assert.IsError(t, err)
	assert.Equal(t, writer.String(), "one\ntwo\nthree\n")

	got, err := Read(&writer)
	assert.IsError(t, err)
	assert.SliceEqual(t, got, []string{"one", "two", "three"})

	err = Save(&writer, []string{"two words"})
	assert.HasError(t, err)
}
