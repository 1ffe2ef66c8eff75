package feedback

import "errors"

// Loader errors.
var (
	// ErrInvalidDocument indicates the configuration file is not valid JSON.
	ErrInvalidDocument = errors.New("feedback: invalid configuration document")

	// ErrInvalidCue indicates a cue name in the configuration is unknown.
	ErrInvalidCue = errors.New("feedback: invalid cue")

	// ErrInvalidOverride indicates an override entry is malformed.
	ErrInvalidOverride = errors.New("feedback: invalid override entry")
)
