// Package home holds the view state of the landing page: the selected
// display language and the selected framework tab.
//
// A State lives for one page view. Transitions are plain assignments and
// always succeed, so every value reachable through SelectLanguage and
// SelectTab with the exported constants is valid.
package home

import (
	"fmt"
	"net/url"

	"github.com/nfrund/esgmate/internal/domain"
)

// Query parameter names used to carry a State across requests.
const (
	QueryLanguage = "lang"
	QueryTab      = "tab"
)

// State is the local UI state of one Home view.
type State struct {
	Language Language
	Tab      Tab
}

// Initial returns the state of a freshly mounted view.
func Initial() State {
	return State{Language: English, Tab: MaterialityAssessment}
}

// SelectLanguage sets the display language. Selecting the current language
// is a no-op.
func (s *State) SelectLanguage(v Language) {
	s.Language = v
}

// SelectTab sets the active framework tab. Selecting the current tab is a
// no-op.
func (s *State) SelectTab(v Tab) {
	s.Tab = v
}

// WithLanguage returns the state that results from SelectLanguage(v)
// without modifying s.
func (s State) WithLanguage(v Language) State {
	s.SelectLanguage(v)
	return s
}

// WithTab returns the state that results from SelectTab(v) without
// modifying s.
func (s State) WithTab(v Tab) State {
	s.SelectTab(v)
	return s
}

// IsInitial reports whether s equals Initial().
func (s State) IsInitial() bool {
	return s == Initial()
}

// Validate is a defensive check; states built through the transitions
// above never fail it.
func (s State) Validate() error {
	if !s.Language.Valid() {
		return fmt.Errorf("state language %q: %w", s.Language, domain.ErrUnknownLanguage)
	}
	if !s.Tab.Valid() {
		return fmt.Errorf("state tab %q: %w", s.Tab, domain.ErrUnknownTab)
	}
	return nil
}

// Query encodes the state as URL query values.
func (s State) Query() url.Values {
	v := url.Values{}
	v.Set(QueryLanguage, s.Language.String())
	v.Set(QueryTab, s.Tab.String())
	return v
}

// FromQuery rebuilds a view from URL query values by replaying the
// transitions on Initial(). Missing parameters keep their initial value.
func FromQuery(v url.Values) (State, error) {
	s := Initial()
	if raw := v.Get(QueryLanguage); raw != "" {
		l, err := ParseLanguage(raw)
		if err != nil {
			return Initial(), err
		}
		s.SelectLanguage(l)
	}
	if raw := v.Get(QueryTab); raw != "" {
		t, err := ParseTab(raw)
		if err != nil {
			return Initial(), err
		}
		s.SelectTab(t)
	}
	return s, nil
}
