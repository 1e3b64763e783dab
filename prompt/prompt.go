// Package prompt builds random practice texts.
package prompt

import (
	"strings"

	"github.com/hojdars/typist/random"
	"github.com/hojdars/typist/wordbank"
)

const DefaultWordCount = 220

// Generate draws wordCount words from bank, with replacement, and joins them
// with single spaces. A non-positive count or an empty bank gives "".
func Generate(bank []string, wordCount int) string {
	if wordCount <= 0 || len(bank) == 0 {
		return ""
	}

	words := make([]string, wordCount)
	for i := range words {
		words[i] = random.Pick(bank)
	}
	return strings.Join(words, " ")
}

func GenerateDefault(wordCount int) string {
	return Generate(wordbank.Default, wordCount)
}
