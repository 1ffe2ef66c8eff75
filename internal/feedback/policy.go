package feedback

import (
	log "github.com/sirupsen/logrus"

	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/gesture"
)

// Backend triggers cues on the platform. Implementations are
// fire-and-forget; the engine never waits on them.
type Backend interface {
	TriggerAudio(cue AudioCue)
	TriggerHaptic(cue HapticCue)
}

// ResolveAudio selects the audio cue for a gesture on an action.
//
// Resolution order: per-action override, silence for a long press on
// space, the delete cue for backspace, then the configured cue for the
// action class. Disabled audio always resolves to AudioNone.
func ResolveAudio(cfg Configuration, g gesture.Gesture, a action.Action) AudioCue {
	audio := cfg.Audio
	if !audio.Enabled {
		return AudioNone
	}
	if cue, ok := audio.Actions[a]; ok {
		return cue
	}
	if a == action.Space && g == gesture.LongPress {
		return AudioNone
	}
	if a == action.Backspace {
		return audio.Delete
	}
	switch a.Class() {
	case action.ClassInput:
		return audio.Input
	case action.ClassDelete:
		return audio.Delete
	case action.ClassSystem:
		return audio.System
	default:
		return AudioNone
	}
}

// ResolveHaptic selects the haptic cue for a gesture on an action.
//
// Resolution order: per-(action, gesture) override, the dedicated
// long-press-on-space cue, then the configured cue for the gesture kind.
// Disabled haptics always resolve to HapticNone.
func ResolveHaptic(cfg Configuration, g gesture.Gesture, a action.Action) HapticCue {
	haptic := cfg.Haptic
	if !haptic.Enabled {
		return HapticNone
	}
	if cue, ok := haptic.Actions[GestureAction{Gesture: g, Action: a}]; ok {
		return cue
	}
	if a == action.Space && g == gesture.LongPress {
		return haptic.LongPressOnSpace
	}
	switch g {
	case gesture.Press:
		return haptic.Press
	case gesture.Release:
		return haptic.Release
	case gesture.DoubleTap:
		return haptic.DoubleTap
	case gesture.LongPress:
		return haptic.LongPress
	case gesture.RepeatPress:
		return haptic.RepeatPress
	default:
		return HapticNone
	}
}

// Policy resolves cues against a configuration and triggers them on a
// backend. A nil backend resolves normally and triggers nothing.
type Policy struct {
	config  Configuration
	backend Backend
}

// NewPolicy creates a policy for the given configuration and backend.
func NewPolicy(config Configuration, backend Backend) *Policy {
	return &Policy{config: config, backend: backend}
}

// Configuration returns the active configuration.
func (p *Policy) Configuration() Configuration {
	return p.config
}

// SetConfiguration swaps the active configuration, e.g. after a config
// file reload. Called from the input thread like every other mutation.
func (p *Policy) SetConfiguration(config Configuration) {
	p.config = config
}

// Audio resolves the audio cue for a gesture on an action.
func (p *Policy) Audio(g gesture.Gesture, a action.Action) AudioCue {
	return ResolveAudio(p.config, g, a)
}

// Haptic resolves the haptic cue for a gesture on an action.
func (p *Policy) Haptic(g gesture.Gesture, a action.Action) HapticCue {
	return ResolveHaptic(p.config, g, a)
}

// Trigger resolves and fires the audio and haptic cues for a gesture on
// an action. The two channels are resolved independently; a cue of none
// is not sent to the backend.
func (p *Policy) Trigger(g gesture.Gesture, a action.Action) {
	if p.backend == nil {
		return
	}
	if cue := p.Audio(g, a); cue != AudioNone {
		p.triggerAudio(cue)
	}
	if cue := p.Haptic(g, a); cue != HapticNone {
		p.triggerHaptic(cue)
	}
}

// triggerAudio fires one audio cue, swallowing backend panics.
func (p *Policy) triggerAudio(cue AudioCue) {
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("feedback: audio backend panic for %v: %v", cue, r)
		}
	}()
	p.backend.TriggerAudio(cue)
}

// triggerHaptic fires one haptic cue, swallowing backend panics.
func (p *Policy) triggerHaptic(cue HapticCue) {
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("feedback: haptic backend panic for %v: %v", cue, r)
		}
	}()
	p.backend.TriggerHaptic(cue)
}
