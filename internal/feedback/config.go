package feedback

import (
	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/gesture"
)

// GestureAction keys a haptic override to one (gesture, action) pair.
type GestureAction struct {
	Gesture gesture.Gesture
	Action  action.Action
}

// AudioConfiguration selects audio cues.
type AudioConfiguration struct {
	// Enabled gates all audio feedback.
	Enabled bool

	// Input is the default cue for input-class actions.
	Input AudioCue

	// Delete is the default cue for delete-class actions.
	Delete AudioCue

	// System is the default cue for system-class actions.
	System AudioCue

	// Actions overrides the cue for specific actions regardless of
	// class. An explicit AudioNone entry silences an action.
	Actions map[action.Action]AudioCue
}

// HapticConfiguration selects haptic cues.
type HapticConfiguration struct {
	// Enabled gates all haptic feedback.
	Enabled bool

	// Cues per gesture kind.
	Press       HapticCue
	Release     HapticCue
	DoubleTap   HapticCue
	LongPress   HapticCue
	RepeatPress HapticCue

	// LongPressOnSpace is the dedicated cue for a long press on the
	// space key, independent of the generic LongPress cue.
	LongPressOnSpace HapticCue

	// Actions overrides the cue for specific (gesture, action) pairs.
	Actions map[GestureAction]HapticCue
}

// Configuration bundles the session feedback settings. It is supplied by
// the host as an in-memory structure at construction.
type Configuration struct {
	Audio  AudioConfiguration
	Haptic HapticConfiguration
}

// DefaultConfiguration returns the standard feedback settings: audio
// clicks on, haptics limited to the space long press.
func DefaultConfiguration() Configuration {
	return Configuration{
		Audio: AudioConfiguration{
			Enabled: true,
			Input:   AudioInput,
			Delete:  AudioDelete,
			System:  AudioSystem,
		},
		Haptic: HapticConfiguration{
			Enabled:          true,
			LongPressOnSpace: HapticMediumImpact,
		},
	}
}

// FullHapticConfiguration returns haptic settings with a cue on every
// gesture kind, for hosts that want feedback on each touch.
func FullHapticConfiguration() HapticConfiguration {
	return HapticConfiguration{
		Enabled:          true,
		Press:            HapticLightImpact,
		Release:          HapticLightImpact,
		DoubleTap:        HapticLightImpact,
		LongPress:        HapticMediumImpact,
		RepeatPress:      HapticSelectionChanged,
		LongPressOnSpace: HapticMediumImpact,
	}
}
