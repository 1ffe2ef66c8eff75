package behavior

import (
	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/gesture"
	"github.com/dshills/keytap/internal/keyboard"
)

// DefaultEndSentenceText terminates a sentence when an oracle does not
// say otherwise.
const DefaultEndSentenceText = ". "

// Behavior is consulted by the dispatcher after an effect has run.
type Behavior interface {
	// ShouldEndSentence reports whether the handled gesture should
	// terminate the current sentence.
	ShouldEndSentence(g gesture.Gesture, a action.Action) bool

	// EndSentenceText is the terminator written when ShouldEndSentence
	// answers true.
	EndSentenceText() string

	// ShouldSwitchMode reports the keyboard mode the context should
	// switch to after the handled gesture, if any.
	ShouldSwitchMode(g gesture.Gesture, a action.Action) (keyboard.Mode, bool)
}
