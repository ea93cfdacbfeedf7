package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/wordrill/internal/model"
)

// Bounds for the number of words in a test.
const (
	MinWords = 10
	MaxWords = 200
)

var validate = validator.New()

// Validate checks practice settings and returns a flag-oriented error message.
func Validate(cfg model.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "\n"))
}

// ValidWords reports whether n is an accepted word count.
func ValidWords(n int) bool {
	return validate.Var(n, fmt.Sprintf("min=%d,max=%d", MinWords, MaxWords)) == nil
}

// ValidWPM reports whether wpm is an accepted target.
func ValidWPM(wpm int) bool {
	return validate.Var(wpm, "gt=0") == nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Words":
		return fmt.Sprintf("--words must be between %d and %d", MinWords, MaxWords)
	case "DurationSeconds":
		return "--duration must be >= 0"
	case "WPMTarget":
		return "--wpm must be > 0"
	case "Candidates":
		return "--candidates must be > 0"
	default:
		return fmt.Sprintf("invalid %s: failed %q", fe.Field(), fe.Tag())
	}
}
