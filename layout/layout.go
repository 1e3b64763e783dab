// Package layout builds and applies keyboard substitution tables.
//
// A layout code is a permutation of the alphabet written as a string: the
// i-th character of the code is what the i-th alphabet key maps to. Every
// function takes the alphabet explicitly so callers can practice on key sets
// other than types.DefaultAlphabet.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hojdars/typist/keyset"
	"github.com/hojdars/typist/random"
	"github.com/hojdars/typist/types"
)

const DefaultShift = 3

// Unmapped replaces characters a mapping has no entry for.
const Unmapped = '?'

var (
	ErrEmptyCode    = errors.New("layout code is empty")
	ErrWrongLength  = errors.New("layout code has the wrong length")
	ErrUnknownKey   = errors.New("layout code uses a key outside the alphabet")
	ErrDuplicateKey = errors.New("layout code repeats a key")
)

// ValidateCode checks that code is a permutation of alpha and says which rule
// it breaks when it is not. Runes are compared as given, without
// normalisation.
func ValidateCode(alpha types.Alphabet, code string) error {
	if code == "" {
		return ErrEmptyCode
	}

	runes := []rune(code)
	if len(runes) != alpha.Len() {
		return fmt.Errorf("ValidateCode: %w, length=%d, alphabet length=%d", ErrWrongLength, len(runes), alpha.Len())
	}

	seen := keyset.New(alpha.Len())
	for pos, r := range runes {
		index := alpha.Index(r)
		if index < 0 {
			return fmt.Errorf("ValidateCode: %w, char=%q, position=%d", ErrUnknownKey, r, pos)
		}
		added, err := seen.Add(index)
		if err != nil {
			return fmt.Errorf("ValidateCode: cannot track key, err=%w", err)
		}
		if !added {
			return fmt.Errorf("ValidateCode: %w, char=%q, position=%d", ErrDuplicateKey, r, pos)
		}
	}
	return nil
}

// IsValidCode reports whether code is a permutation of alpha. It never panics.
func IsValidCode(alpha types.Alphabet, code string) bool {
	return ValidateCode(alpha, code) == nil
}

// MappingFromCode pairs the i-th alphabet key with the i-th character of code.
// Validate the code first; keys past the end of a short code stay unmapped.
func MappingFromCode(alpha types.Alphabet, code string) types.Mapping {
	runes := []rune(code)
	result := make(types.Mapping, alpha.Len())
	for i := 0; i < alpha.Len() && i < len(runes); i += 1 {
		result[alpha.At(i)] = runes[i]
	}
	return result
}

// CodeFromMapping reads the image of every alphabet key in canonical order.
// It is the inverse of MappingFromCode; keys missing from physicalToVirtual
// are left out.
func CodeFromMapping(alpha types.Alphabet, physicalToVirtual types.Mapping) string {
	var builder strings.Builder
	for i := 0; i < alpha.Len(); i += 1 {
		if r, ok := physicalToVirtual[alpha.At(i)]; ok {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func Identity(alpha types.Alphabet) types.Mapping {
	result := make(types.Mapping, alpha.Len())
	for i := 0; i < alpha.Len(); i += 1 {
		result[alpha.At(i)] = alpha.At(i)
	}
	return result
}

// Random returns a uniformly drawn permutation of alpha.
func Random(alpha types.Alphabet) types.Mapping {
	shuffled := random.Randomize(alpha.Runes())
	result := make(types.Mapping, alpha.Len())
	for i := 0; i < alpha.Len(); i += 1 {
		result[alpha.At(i)] = shuffled[i]
	}
	return result
}

// CaesarShift maps the key at position i to the key at (i+shift) mod N.
// Shifting by N-shift undoes it; negative shifts rotate the other way.
func CaesarShift(alpha types.Alphabet, shift int) types.Mapping {
	n := alpha.Len()
	result := make(types.Mapping, n)
	if n == 0 {
		return result
	}

	shift = ((shift % n) + n) % n
	for i := 0; i < n; i += 1 {
		result[alpha.At(i)] = alpha.At((i + shift) % n)
	}
	return result
}

// Invert swaps the direction of a mapping.
func Invert(mapping types.Mapping) types.Mapping {
	result := make(types.Mapping, len(mapping))
	for from, to := range mapping {
		result[to] = from
	}
	return result
}

// Compose returns the mapping that applies first and then second.
func Compose(first, second types.Mapping) types.Mapping {
	result := make(types.Mapping, len(first))
	for from, via := range first {
		if to, ok := second[via]; ok {
			result[from] = to
		}
	}
	return result
}

// EncodeForDisplay rewrites text through virtualToPhysical one character at a
// time. Spaces are kept, unknown characters become Unmapped, and the result
// has as many runes as text.
func EncodeForDisplay(text string, virtualToPhysical types.Mapping) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		builder.WriteRune(substitute(r, virtualToPhysical))
	}
	return builder.String()
}

// DecodeFromDisplay undoes EncodeForDisplay for text made of mapped keys and
// spaces.
func DecodeFromDisplay(text string, virtualToPhysical types.Mapping) string {
	return EncodeForDisplay(text, Invert(virtualToPhysical))
}

func substitute(r rune, mapping types.Mapping) rune {
	if r == ' ' {
		return r
	}
	if to, ok := mapping[r]; ok {
		return to
	}
	return Unmapped
}
