package middleware

import "github.com/labstack/echo/v4"

const (
	htmxKey = "htmx"

	// HeaderHXRequest is set by htmx on every request it issues.
	HeaderHXRequest = "HX-Request"
)

// HTMX marks requests issued by htmx so handlers can answer with a fragment
// instead of a full document.
func HTMX(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(htmxKey, c.Request().Header.Get(HeaderHXRequest) == "true")
		return next(c)
	}
}

// IsHTMX reports whether the HTMX middleware saw an htmx request.
func IsHTMX(c echo.Context) bool {
	is, _ := c.Get(htmxKey).(bool)
	return is
}
