package service

import "errors"

var (
	// ErrInvalidParameters signals malformed or missing report inputs; the
	// engine assumes validated inputs but fails fast instead of aggregating
	// over garbage.
	ErrInvalidParameters = errors.New("invalid report parameters")
)
