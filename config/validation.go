package config

import (
	"fmt"
	"strings"

	"github.com/hojdars/typist/types"
)

// ValidationError describes one bad setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate reports every bad setting at once.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if _, err := types.NewAlphabet(c.Alphabet); err != nil {
		errs = append(errs, ValidationError{
			Field:   "alphabet",
			Message: err.Error(),
		})
	}

	if c.WordCount < 0 {
		errs = append(errs, ValidationError{
			Field:   "word_count",
			Message: fmt.Sprintf("must not be negative, got %d", c.WordCount),
		})
	}

	if c.MaxChars < 1 {
		errs = append(errs, ValidationError{
			Field:   "max_chars",
			Message: fmt.Sprintf("must be at least 1, got %d", c.MaxChars),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
