package feedback

import "fmt"

// AudioCue identifies an audio feedback sound. The backend maps cues to
// platform sounds; the engine only selects them.
type AudioCue uint8

const (
	// AudioNone plays nothing.
	AudioNone AudioCue = iota
	// AudioInput is the standard key click for text-producing actions.
	AudioInput
	// AudioDelete is the deletion click.
	AudioDelete
	// AudioSystem is the modifier click for system actions.
	AudioSystem
)

// String returns the canonical cue name.
func (c AudioCue) String() string {
	switch c {
	case AudioInput:
		return "input"
	case AudioDelete:
		return "delete"
	case AudioSystem:
		return "system"
	default:
		return "none"
	}
}

// ParseAudioCue converts a canonical cue name into an AudioCue.
func ParseAudioCue(name string) (AudioCue, error) {
	switch name {
	case "none":
		return AudioNone, nil
	case "input":
		return AudioInput, nil
	case "delete":
		return AudioDelete, nil
	case "system":
		return AudioSystem, nil
	default:
		return AudioNone, fmt.Errorf("feedback: unknown audio cue %q", name)
	}
}

// HapticCue identifies a haptic feedback pattern.
type HapticCue uint8

const (
	// HapticNone triggers nothing.
	HapticNone HapticCue = iota
	// HapticLightImpact is a light tap.
	HapticLightImpact
	// HapticMediumImpact is a medium tap.
	HapticMediumImpact
	// HapticHeavyImpact is a heavy tap.
	HapticHeavyImpact
	// HapticSelectionChanged is the selection-tick pattern.
	HapticSelectionChanged
	// HapticSuccess is the success notification pattern.
	HapticSuccess
	// HapticWarning is the warning notification pattern.
	HapticWarning
	// HapticError is the error notification pattern.
	HapticError
)

// String returns the canonical cue name.
func (c HapticCue) String() string {
	switch c {
	case HapticLightImpact:
		return "lightImpact"
	case HapticMediumImpact:
		return "mediumImpact"
	case HapticHeavyImpact:
		return "heavyImpact"
	case HapticSelectionChanged:
		return "selectionChanged"
	case HapticSuccess:
		return "success"
	case HapticWarning:
		return "warning"
	case HapticError:
		return "error"
	default:
		return "none"
	}
}

// ParseHapticCue converts a canonical cue name into a HapticCue.
func ParseHapticCue(name string) (HapticCue, error) {
	switch name {
	case "none":
		return HapticNone, nil
	case "lightImpact":
		return HapticLightImpact, nil
	case "mediumImpact":
		return HapticMediumImpact, nil
	case "heavyImpact":
		return HapticHeavyImpact, nil
	case "selectionChanged":
		return HapticSelectionChanged, nil
	case "success":
		return HapticSuccess, nil
	case "warning":
		return HapticWarning, nil
	case "error":
		return HapticError, nil
	default:
		return HapticNone, fmt.Errorf("feedback: unknown haptic cue %q", name)
	}
}
