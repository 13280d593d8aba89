package web

import "embed"

// FS contains the static assets served under /static and copied by the
// static export. Paths are rooted at "static/".
//
//go:embed static
var FS embed.FS

// Content holds the page copy catalogs decoded by internal/content.
//
//go:embed content/*.yaml
var Content embed.FS
