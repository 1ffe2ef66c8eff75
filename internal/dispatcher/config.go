package dispatcher

import "github.com/dshills/keytap/internal/drag"

// Config holds dispatcher configuration options.
type Config struct {
	// RecoverPanics wraps effect execution in panic recovery.
	RecoverPanics bool

	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// DragSensitivity is the horizontal distance in points that moves
	// the input cursor by one character during a space drag.
	DragSensitivity float64
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RecoverPanics:   true,
		EnableMetrics:   false,
		DragSensitivity: drag.DefaultSensitivity,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverPanics = recover
	return c
}

// WithDragSensitivity returns a copy of the config with the space drag
// sensitivity set.
func (c Config) WithDragSensitivity(points float64) Config {
	c.DragSensitivity = points
	return c
}
