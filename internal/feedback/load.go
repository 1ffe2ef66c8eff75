package feedback

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/gesture"
)

// LoadConfiguration reads a feedback configuration from a JSON file,
// layered over DefaultConfiguration. A missing file is not an error; it
// yields the defaults.
//
// Document shape:
//
//	{
//	  "audio": {
//	    "enabled": true,
//	    "input": "input", "delete": "delete", "system": "system",
//	    "overrides": [{"action": "space", "cue": "none"}]
//	  },
//	  "haptic": {
//	    "enabled": true,
//	    "press": "none", ..., "longPressOnSpace": "mediumImpact",
//	    "overrides": [{"gesture": "longPress", "action": "space", "cue": "heavyImpact"}]
//	  }
//	}
func LoadConfiguration(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfiguration(), nil
		}
		return DefaultConfiguration(), fmt.Errorf("feedback: reading %s: %w", path, err)
	}
	return ParseConfiguration(data)
}

// ParseConfiguration parses a JSON feedback configuration, layered over
// DefaultConfiguration so absent keys keep their defaults.
func ParseConfiguration(data []byte) (Configuration, error) {
	cfg := DefaultConfiguration()
	if !gjson.ValidBytes(data) {
		return cfg, ErrInvalidDocument
	}
	root := gjson.ParseBytes(data)

	if err := parseAudio(root.Get("audio"), &cfg.Audio); err != nil {
		return DefaultConfiguration(), err
	}
	if err := parseHaptic(root.Get("haptic"), &cfg.Haptic); err != nil {
		return DefaultConfiguration(), err
	}
	return cfg, nil
}

func parseAudio(node gjson.Result, cfg *AudioConfiguration) error {
	if !node.Exists() {
		return nil
	}
	if v := node.Get("enabled"); v.Exists() {
		cfg.Enabled = v.Bool()
	}

	cues := []struct {
		key string
		dst *AudioCue
	}{
		{"input", &cfg.Input},
		{"delete", &cfg.Delete},
		{"system", &cfg.System},
	}
	for _, c := range cues {
		v := node.Get(c.key)
		if !v.Exists() {
			continue
		}
		cue, err := ParseAudioCue(v.String())
		if err != nil {
			return fmt.Errorf("%w: audio.%s: %v", ErrInvalidCue, c.key, err)
		}
		*c.dst = cue
	}

	for _, item := range node.Get("overrides").Array() {
		a, err := action.Parse(item.Get("action").String())
		if err != nil {
			return fmt.Errorf("%w: audio override: %v", ErrInvalidOverride, err)
		}
		cue, err := ParseAudioCue(item.Get("cue").String())
		if err != nil {
			return fmt.Errorf("%w: audio override for %v: %v", ErrInvalidOverride, a, err)
		}
		if cfg.Actions == nil {
			cfg.Actions = make(map[action.Action]AudioCue)
		}
		cfg.Actions[a] = cue
	}
	return nil
}

func parseHaptic(node gjson.Result, cfg *HapticConfiguration) error {
	if !node.Exists() {
		return nil
	}
	if v := node.Get("enabled"); v.Exists() {
		cfg.Enabled = v.Bool()
	}

	cues := []struct {
		key string
		dst *HapticCue
	}{
		{"press", &cfg.Press},
		{"release", &cfg.Release},
		{"doubleTap", &cfg.DoubleTap},
		{"longPress", &cfg.LongPress},
		{"repeatPress", &cfg.RepeatPress},
		{"longPressOnSpace", &cfg.LongPressOnSpace},
	}
	for _, c := range cues {
		v := node.Get(c.key)
		if !v.Exists() {
			continue
		}
		cue, err := ParseHapticCue(v.String())
		if err != nil {
			return fmt.Errorf("%w: haptic.%s: %v", ErrInvalidCue, c.key, err)
		}
		*c.dst = cue
	}

	for _, item := range node.Get("overrides").Array() {
		g, err := gesture.Parse(item.Get("gesture").String())
		if err != nil {
			return fmt.Errorf("%w: haptic override: %v", ErrInvalidOverride, err)
		}
		a, err := action.Parse(item.Get("action").String())
		if err != nil {
			return fmt.Errorf("%w: haptic override: %v", ErrInvalidOverride, err)
		}
		cue, err := ParseHapticCue(item.Get("cue").String())
		if err != nil {
			return fmt.Errorf("%w: haptic override for %v %v: %v", ErrInvalidOverride, g, a, err)
		}
		if cfg.Actions == nil {
			cfg.Actions = make(map[GestureAction]HapticCue)
		}
		cfg.Actions[GestureAction{Gesture: g, Action: a}] = cue
	}
	return nil
}
