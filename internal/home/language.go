package home

import (
	"fmt"
	"strings"

	"github.com/nfrund/esgmate/internal/domain"
)

// Language is the display language picked with the header toggle.
// Switching it only changes which toggle button is active; the page copy
// is fixed.
type Language string

const (
	English Language = "EN"
	Spanish Language = "ES"
)

// Languages returns the selectable languages in button order.
func Languages() []Language {
	return []Language{English, Spanish}
}

// ParseLanguage resolves a query or form value to a Language.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToUpper(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Spanish:
		return Spanish, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, s)
}

func (l Language) String() string { return string(l) }

// Valid reports whether l is one of Languages.
func (l Language) Valid() bool {
	return l == English || l == Spanish
}
