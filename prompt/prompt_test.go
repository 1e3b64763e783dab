package prompt

import (
	"slices"
	"strings"
	"testing"

	"github.com/hojdars/typist/assert"
	"github.com/hojdars/typist/wordbank"
)

func TestGenerate(t *testing.T) {
	t.Run("zero words is the empty string", func(t *testing.T) {
		assert.Equal(t, Generate(wordbank.Default, 0), "")
		assert.Equal(t, GenerateDefault(0), "")
	})

	t.Run("negative count and empty bank degrade to empty", func(t *testing.T) {
		assert.Equal(t, Generate(wordbank.Default, -3), "")
		assert.Equal(t, Generate(nil, 5), "")
	})

	t.Run("exact word count, every word from the bank", func(t *testing.T) {
		bank := []string{"red", "green", "blue"}
		got := Generate(bank, 50)
		tokens := strings.Split(got, " ")
		assert.Equal(t, len(tokens), 50)
		for _, token := range tokens {
			assert.True(t, slices.Contains(bank, token), "token "+token+" comes from the bank")
		}
	})

	t.Run("default word count", func(t *testing.T) {
		got := GenerateDefault(DefaultWordCount)
		assert.Equal(t, len(strings.Fields(got)), 220)
		assert.Equal(t, strings.Contains(got, "  "), false)
	})

	t.Run("single word bank repeats", func(t *testing.T) {
		assert.Equal(t, Generate([]string{"go"}, 3), "go go go")
	})
}
