package home

import (
	"fmt"
	"strings"

	"github.com/nfrund/esgmate/internal/domain"
)

// Tab identifies one of the ESG framework panels.
type Tab string

const (
	MaterialityAssessment Tab = "materiality"
	GRI                   Tab = "gri"
	TCFD                  Tab = "tcfd"
)

// Tabs returns the framework tabs in selector order.
func Tabs() []Tab {
	return []Tab{MaterialityAssessment, GRI, TCFD}
}

// ParseTab resolves a query value to a Tab. Matching is case-insensitive.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownTab, s)
}

func (t Tab) String() string { return string(t) }

// Valid reports whether t is one of Tabs.
func (t Tab) Valid() bool {
	switch t {
	case MaterialityAssessment, GRI, TCFD:
		return true
	}
	return false
}
