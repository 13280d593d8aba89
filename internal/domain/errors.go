package domain

import "errors"

// Sentinel errors for the domain layer. Callers wrap them with context and
// check them with errors.Is.
var (
	ErrUnknownLanguage = errors.New("unknown display language")
	ErrUnknownTab      = errors.New("unknown framework tab")
	ErrInvalidCatalog  = errors.New("invalid content catalog")
)
