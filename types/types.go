package types

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	ErrEmptyAlphabet = errors.New("alphabet is empty")
	ErrDuplicateRune = errors.New("alphabet repeats a character")
)

// Alphabet is the ordered set of keys a layout permutes. The zero value is
// an empty alphabet; use NewAlphabet to build one.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

// DefaultAlphabet holds the lowercase latin letters.
var DefaultAlphabet = MustAlphabet("abcdefghijklmnopqrstuvwxyz")

func NewAlphabet(chars string) (Alphabet, error) {
	runes := []rune(chars)
	if len(runes) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if prev, ok := index[r]; ok {
			return Alphabet{}, fmt.Errorf("NewAlphabet: %w, char=%q, first=%d, again=%d", ErrDuplicateRune, r, prev, i)
		}
		index[r] = i
	}
	return Alphabet{runes: runes, index: index}, nil
}

func MustAlphabet(chars string) Alphabet {
	alpha, err := NewAlphabet(chars)
	if err != nil {
		panic(err)
	}
	return alpha
}

func (a Alphabet) Len() int {
	return len(a.runes)
}

func (a Alphabet) At(i int) rune {
	return a.runes[i]
}

// Runes returns a copy of the alphabet in canonical order.
func (a Alphabet) Runes() []rune {
	return slices.Clone(a.runes)
}

// Index returns the position of r, or -1 when r is not part of the alphabet.
func (a Alphabet) Index(r rune) int {
	i, ok := a.index[r]
	if !ok {
		return -1
	}
	return i
}

func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

func (a Alphabet) String() string {
	return string(a.runes)
}

// Mapping is a character substitution table. The same shape serves both
// directions: virtual to physical when encoding text for display, physical to
// virtual when reading a layout code back.
type Mapping map[rune]rune

type LayoutFile struct {
	Name         string
	Alphabet     Alphabet
	Code         string
	CreatedBy    string
	CreationDate time.Time
	Fingerprint  [20]byte
}
