package creation

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const MaxPromptLength = 500

var ErrPromptTooLong = errors.New("prompt exceeds maximum length")

// Validation is the stored result of moderating a prompt before any slot is spent.
type Validation struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Prompt           string
	TranslatedPrompt string
	Decision         Decision
	Reason           string
	CreatedAt        time.Time
}

func NormalizePrompt(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", ErrEmptyPrompt
	}
	if utf8.RuneCountInString(p) > MaxPromptLength {
		return "", ErrPromptTooLong
	}
	return p, nil
}
