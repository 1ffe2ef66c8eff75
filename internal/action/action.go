package action

import (
	"unicode"

	"github.com/dshills/keytap/internal/keyboard"
)

// Kind discriminates the action variants.
type Kind uint8

const (
	// KindNone is the zero action. It never binds to an effect.
	KindNone Kind = iota
	// KindCharacter is a text-producing key carrying one rune.
	KindCharacter
	// KindEmoji inserts an emoji string.
	KindEmoji
	// KindSpace is the space bar.
	KindSpace
	// KindBackspace deletes backward.
	KindBackspace
	// KindNewline inserts a line break.
	KindNewline
	// KindShift toggles the alphabetic casing.
	KindShift
	// KindSwitchType switches the keyboard page.
	KindSwitchType
	// KindSwitchEmojiCategory selects an emoji picker category.
	KindSwitchEmojiCategory
	// KindNextLocale cycles the context locale list.
	KindNextLocale
	// KindDismissKeyboard asks the controller to dismiss the keyboard.
	KindDismissKeyboard
)

// String returns the canonical kind name.
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindEmoji:
		return "emoji"
	case KindSpace:
		return "space"
	case KindBackspace:
		return "backspace"
	case KindNewline:
		return "newline"
	case KindShift:
		return "shift"
	case KindSwitchType:
		return "switchType"
	case KindSwitchEmojiCategory:
		return "switchEmojiCategory"
	case KindNextLocale:
		return "nextLocale"
	case KindDismissKeyboard:
		return "dismissKeyboard"
	default:
		return "none"
	}
}

// Action is a symbolic keyboard action. Actions are compared
// structurally; the zero value is the none action.
type Action struct {
	// Kind discriminates the variant.
	Kind Kind

	// Char is the rune of a character action.
	Char rune

	// Text is the payload of emoji and emoji-category actions.
	Text string

	// Target is the destination page of a switchType action.
	Target keyboard.Type
}

// Parameterless actions.
var (
	None            = Action{Kind: KindNone}
	Space           = Action{Kind: KindSpace}
	Backspace       = Action{Kind: KindBackspace}
	Newline         = Action{Kind: KindNewline}
	Shift           = Action{Kind: KindShift}
	NextLocale      = Action{Kind: KindNextLocale}
	DismissKeyboard = Action{Kind: KindDismissKeyboard}
)

// Character returns the action for a text-producing key.
func Character(r rune) Action {
	return Action{Kind: KindCharacter, Char: r}
}

// Emoji returns the action inserting the given emoji.
func Emoji(s string) Action {
	return Action{Kind: KindEmoji, Text: s}
}

// SwitchType returns the action switching to the given keyboard page.
func SwitchType(t keyboard.Type) Action {
	return Action{Kind: KindSwitchType, Target: t}
}

// SwitchEmojiCategory returns the action selecting an emoji picker
// category.
func SwitchEmojiCategory(name string) Action {
	return Action{Kind: KindSwitchEmojiCategory, Text: name}
}

// Class groups actions for feedback defaults.
type Class uint8

const (
	// ClassNone is the class of the none action.
	ClassNone Class = iota
	// ClassInput covers text-producing actions.
	ClassInput
	// ClassSystem covers actions that change keyboard state rather than
	// text.
	ClassSystem
	// ClassDelete covers deletions.
	ClassDelete
)

// String returns the canonical class name.
func (c Class) String() string {
	switch c {
	case ClassInput:
		return "input"
	case ClassSystem:
		return "system"
	case ClassDelete:
		return "delete"
	default:
		return "none"
	}
}

// Class returns the feedback class of the action. It is a pure
// classification over the variant.
func (a Action) Class() Class {
	switch a.Kind {
	case KindCharacter, KindEmoji, KindSpace, KindNewline:
		return ClassInput
	case KindBackspace:
		return ClassDelete
	case KindShift, KindSwitchType, KindSwitchEmojiCategory, KindNextLocale, KindDismissKeyboard:
		return ClassSystem
	default:
		return ClassNone
	}
}

// IsWordDelimiter reports whether the action types a rune that ends the
// word under the cursor: whitespace or closing punctuation.
func (a Action) IsWordDelimiter() bool {
	if a.Kind == KindSpace || a.Kind == KindNewline {
		return true
	}
	if a.Kind != KindCharacter {
		return false
	}
	if unicode.IsSpace(a.Char) {
		return true
	}
	switch a.Char {
	case '.', ',', '!', '?', ';', ':':
		return true
	}
	return false
}
