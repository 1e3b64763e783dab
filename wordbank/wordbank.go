// Package wordbank holds the words practice prompts are sampled from.
package wordbank

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var ErrEmptyBank = errors.New("word bank is empty")

// Default is the built-in bank. Treat it as read-only; Copy hands out a
// private slice.
var Default = []string{
	"the", "be", "of", "and", "a", "to", "in", "he", "have", "it",
	"that", "for", "they", "with", "as", "not", "on", "she", "at", "by",
	"this", "we", "you", "do", "but", "from", "or", "which", "one", "would",
	"all", "will", "there", "say", "who", "make", "when", "can", "more", "if",
	"no", "man", "out", "other", "so", "what", "time", "up", "go", "about",
	"than", "into", "could", "state", "only", "new", "year", "some", "take", "come",
	"these", "know", "see", "use", "get", "like", "then", "first", "any", "work",
	"now", "may", "such", "give", "over", "think", "most", "even", "find", "day",
	"also", "after", "way", "many", "must", "look", "before", "great", "back", "through",
	"long", "where", "much", "should", "well", "people", "down", "own", "just", "because",
	"good", "each", "those", "feel", "seem", "how", "high", "too", "place", "little",
	"world", "very", "still", "nation", "hand", "old", "life", "tell", "write", "become",
	"here", "show", "house", "both", "between", "need", "mean", "call", "develop", "under",
	"last", "right", "move", "thing", "general", "school", "never", "same", "another", "begin",
	"while", "number", "part", "turn", "real", "leave", "might", "want", "point", "form",
	"off", "child", "few", "small", "since", "against", "ask", "late", "home", "interest",
	"large", "person", "end", "open", "public", "follow", "during", "present", "without", "again",
	"hold", "govern", "around", "possible", "head", "consider", "word", "program", "problem", "however",
	"lead", "system", "set", "order", "eye", "plan", "run", "keep", "face", "fact",
	"group", "play", "stand", "increase", "early", "course", "change", "help", "line", "city",
	"light", "water", "quick", "brown", "fox", "jump", "lazy", "zero", "quiet", "year",
}

func Copy() []string {
	return slices.Clone(Default)
}

// Read parses a word list. Words are separated by whitespace, lines starting
// with '#' are comments, and every word is normalised to NFC.
func Read(reader io.Reader) ([]string, error) {
	result := make([]string, 0)
	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, word := range strings.Fields(line) {
			result = append(result, norm.NFC.String(word))
		}
	}
	if err := scanner.Err(); err != nil {
		return []string{}, fmt.Errorf("error while reading word bank, line=%d, err=%w", lineNumber, err)
	}
	if len(result) == 0 {
		return []string{}, ErrEmptyBank
	}
	return result, nil
}

func Save(writer io.Writer, words []string) error {
	for i, word := range words {
		if word == "" || strings.ContainsFunc(word, unicode.IsSpace) {
			return fmt.Errorf("word cannot be saved, index=%d, word=%q", i, word)
		}

		_, err := io.WriteString(writer, word+"\n")
		if err != nil {
			return fmt.Errorf("encountered error while writing word index %d, err=%w", i, err)
		}
	}
	return nil
}
