package pages

import (
	"strings"

	"github.com/nfrund/esgmate/internal/home"
)

// Linker maps the view state a selector leads to onto an href.
type Linker func(home.State) string

// QueryLinker links to path with the state in the query string. The
// initial state links to the bare path.
func QueryLinker(path string) Linker {
	return func(s home.State) string {
		if s.IsInitial() {
			return path
		}
		return path + "?" + s.Query().Encode()
	}
}

// FileLinker links each state to its exported file, see FileName.
func FileLinker() Linker {
	return FileName
}

// FileName is the file a static export writes for s: index.html for the
// initial state, "<lang>-<tab>.html" otherwise.
func FileName(s home.State) string {
	if s.IsInitial() {
		return "index.html"
	}
	return strings.ToLower(s.Language.String()) + "-" + s.Tab.String() + ".html"
}
