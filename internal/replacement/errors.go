package replacement

import "errors"

// Validation errors.
var (
	// ErrSelfMapping reports a substitution entry that maps a rune to
	// itself.
	ErrSelfMapping = errors.New("replacement: substitution maps a rune to itself")

	// ErrCycle reports a substitution table whose entries chain back
	// onto themselves.
	ErrCycle = errors.New("replacement: substitution table contains a cycle")
)
