package action

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keytap/internal/keyboard"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("action: empty action specification")
	ErrInvalidSpec = errors.New("action: invalid action specification")
)

// Parse parses an action specification string into an Action.
//
// Supported formats:
//   - Plain keys: "space", "backspace", "newline", "shift",
//     "nextLocale", "dismissKeyboard"
//   - Parameterized keys: "character:a", "emoji:😀",
//     "switchType:numeric", "switchEmojiCategory:smileys"
func Parse(spec string) (Action, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return None, ErrEmptySpec
	}

	name, arg, hasArg := strings.Cut(spec, ":")

	switch name {
	case "space":
		return plain(Space, spec, hasArg)
	case "backspace":
		return plain(Backspace, spec, hasArg)
	case "newline":
		return plain(Newline, spec, hasArg)
	case "shift":
		return plain(Shift, spec, hasArg)
	case "nextLocale":
		return plain(NextLocale, spec, hasArg)
	case "dismissKeyboard":
		return plain(DismissKeyboard, spec, hasArg)
	case "character":
		runes := []rune(arg)
		if !hasArg || len(runes) != 1 {
			return None, fmt.Errorf("%w: %q needs exactly one character", ErrInvalidSpec, spec)
		}
		return Character(runes[0]), nil
	case "emoji":
		if !hasArg || arg == "" {
			return None, fmt.Errorf("%w: %q needs an emoji payload", ErrInvalidSpec, spec)
		}
		return Emoji(arg), nil
	case "switchType":
		if !hasArg {
			return None, fmt.Errorf("%w: %q needs a keyboard type", ErrInvalidSpec, spec)
		}
		target, err := keyboard.ParseType(arg)
		if err != nil {
			return None, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
		}
		return SwitchType(target), nil
	case "switchEmojiCategory":
		if !hasArg || arg == "" {
			return None, fmt.Errorf("%w: %q needs a category name", ErrInvalidSpec, spec)
		}
		return SwitchEmojiCategory(arg), nil
	default:
		return None, fmt.Errorf("%w: unknown action %q", ErrInvalidSpec, spec)
	}
}

// plain rejects arguments on parameterless actions.
func plain(a Action, spec string, hasArg bool) (Action, error) {
	if hasArg {
		return None, fmt.Errorf("%w: %q takes no argument", ErrInvalidSpec, spec)
	}
	return a, nil
}

// String returns the specification form of the action, the inverse of
// Parse.
func (a Action) String() string {
	switch a.Kind {
	case KindCharacter:
		return "character:" + string(a.Char)
	case KindEmoji:
		return "emoji:" + a.Text
	case KindSpace:
		return "space"
	case KindBackspace:
		return "backspace"
	case KindNewline:
		return "newline"
	case KindShift:
		return "shift"
	case KindSwitchType:
		return "switchType:" + a.Target.String()
	case KindSwitchEmojiCategory:
		return "switchEmojiCategory:" + a.Text
	case KindNextLocale:
		return "nextLocale"
	case KindDismissKeyboard:
		return "dismissKeyboard"
	default:
		return "none"
	}
}
