package color

import "errors"

var (
	// ErrInvalidChannel is returned when a numeric channel is outside its valid range.
	ErrInvalidChannel = errors.New("invalid channel")

	// ErrInvalidHexFormat is returned when a hex string has the wrong length or structure.
	ErrInvalidHexFormat = errors.New("invalid hex format")

	// ErrInvalidHexDigit is returned when a hex string contains a character outside [0-9a-fA-F].
	ErrInvalidHexDigit = errors.New("invalid hex digit")
)
