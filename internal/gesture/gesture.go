package gesture

import "fmt"

// Gesture identifies a discrete input gesture applied to a keyboard action.
type Gesture uint8

const (
	// Press indicates the key was pressed down.
	Press Gesture = iota
	// Release indicates the key was released. Text-producing effects
	// resolve on release.
	Release
	// LongPress indicates the key was held past the long-press threshold.
	LongPress
	// DoubleTap indicates the key was tapped twice within the double-tap
	// window.
	DoubleTap
	// RepeatPress indicates an auto-repeat tick while the key is held.
	RepeatPress
)

// String returns the canonical gesture name.
func (g Gesture) String() string {
	switch g {
	case Press:
		return "press"
	case Release:
		return "release"
	case LongPress:
		return "longPress"
	case DoubleTap:
		return "doubleTap"
	case RepeatPress:
		return "repeatPress"
	default:
		return "unknown"
	}
}

// Parse converts a canonical gesture name into a Gesture.
// It accepts the names produced by String.
func Parse(name string) (Gesture, error) {
	switch name {
	case "press":
		return Press, nil
	case "release":
		return Release, nil
	case "longPress":
		return LongPress, nil
	case "doubleTap":
		return DoubleTap, nil
	case "repeatPress":
		return RepeatPress, nil
	default:
		return Press, fmt.Errorf("gesture: unknown gesture %q", name)
	}
}

// All returns every gesture kind in declaration order.
// Useful for exhaustive policy tables and tests.
func All() []Gesture {
	return []Gesture{Press, Release, LongPress, DoubleTap, RepeatPress}
}
