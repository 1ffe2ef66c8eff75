package config

import "errors"

var (
	// ErrInvalidSensitivity indicates a non-positive space-drag
	// sensitivity.
	ErrInvalidSensitivity = errors.New("config: space drag sensitivity must be positive")

	// ErrInvalidLongPress indicates an unknown space long-press
	// preference name.
	ErrInvalidLongPress = errors.New("config: invalid space long-press preference")

	// ErrInvalidLocale indicates a locale tag that does not parse.
	ErrInvalidLocale = errors.New("config: invalid locale tag")

	// ErrInvalidLogLevel indicates an unknown logging level name.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)
