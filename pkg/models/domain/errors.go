package domain

import "errors"

// Sentinel errors for the report pipeline. Callers match them with errors.Is;
// wrapping sites attach the path, column or value involved.
var (
	ErrInvalidFormat  = errors.New("invalid file format")
	ErrNotFound       = errors.New("file not found")
	ErrUnknownReport  = errors.New("unknown report")
	ErrMissingColumn  = errors.New("missing column")
	ErrInvalidValue   = errors.New("invalid value")
	ErrHeaderMismatch = errors.New("header mismatch")
)
