package home_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/esgmate/internal/domain"
	"github.com/nfrund/esgmate/internal/home"
)

func TestInitial(t *testing.T) {
	s := home.Initial()

	assert.Equal(t, home.English, s.Language)
	assert.Equal(t, home.MaterialityAssessment, s.Tab)
	assert.True(t, s.IsInitial())
	assert.NoError(t, s.Validate())
}

func TestSelectLanguage(t *testing.T) {
	for _, lang := range home.Languages() {
		t.Run(lang.String(), func(t *testing.T) {
			s := home.Initial()
			s.SelectLanguage(lang)
			assert.Equal(t, lang, s.Language)
			assert.Equal(t, home.MaterialityAssessment, s.Tab, "language toggle must not touch the tab")

			s.SelectLanguage(lang)
			assert.Equal(t, lang, s.Language, "selecting the same language twice is a no-op")
		})
	}
}

func TestSelectTab(t *testing.T) {
	for _, tab := range home.Tabs() {
		t.Run(tab.String(), func(t *testing.T) {
			s := home.Initial()
			s.SelectTab(tab)
			assert.Equal(t, tab, s.Tab)
			assert.Equal(t, home.English, s.Language)

			before := s
			s.SelectTab(tab)
			assert.Equal(t, before, s)
		})
	}
}

func TestWithTransitionsDoNotMutate(t *testing.T) {
	s := home.Initial()

	next := s.WithTab(home.TCFD).WithLanguage(home.Spanish)

	assert.True(t, s.IsInitial())
	assert.Equal(t, home.State{Language: home.Spanish, Tab: home.TCFD}, next)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    home.Tab
		wantErr bool
	}{
		{name: "lower", input: "gri", want: home.GRI},
		{name: "upper", input: "TCFD", want: home.TCFD},
		{name: "padded", input: " materiality ", want: home.MaterialityAssessment},
		{name: "korean label is not a key", input: "중대성평가", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := home.ParseTab(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownTab)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	l, err := home.ParseLanguage("es")
	require.NoError(t, err)
	assert.Equal(t, home.Spanish, l)

	_, err = home.ParseLanguage("fr")
	assert.ErrorIs(t, err, domain.ErrUnknownLanguage)
}

func TestFromQuery(t *testing.T) {
	t.Run("empty query is the initial view", func(t *testing.T) {
		s, err := home.FromQuery(url.Values{})
		require.NoError(t, err)
		assert.True(t, s.IsInitial())
	})

	t.Run("round trip", func(t *testing.T) {
		want := home.State{Language: home.Spanish, Tab: home.GRI}
		got, err := home.FromQuery(want.Query())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("partial query keeps the other value", func(t *testing.T) {
		s, err := home.FromQuery(url.Values{"tab": {"tcfd"}})
		require.NoError(t, err)
		assert.Equal(t, home.English, s.Language)
		assert.Equal(t, home.TCFD, s.Tab)
	})

	t.Run("unknown value falls back to the initial view", func(t *testing.T) {
		s, err := home.FromQuery(url.Values{"tab": {"esrs"}})
		require.ErrorIs(t, err, domain.ErrUnknownTab)
		assert.True(t, s.IsInitial())
	})
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, home.State{Language: "DE", Tab: home.GRI}.Validate(), domain.ErrUnknownLanguage)
	assert.ErrorIs(t, home.State{Language: home.English, Tab: "esrs"}.Validate(), domain.ErrUnknownTab)
}
