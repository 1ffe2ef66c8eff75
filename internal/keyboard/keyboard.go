package keyboard

import "fmt"

// Type identifies a keyboard page.
type Type uint8

const (
	// TypeAlphabetic is the letter page.
	TypeAlphabetic Type = iota
	// TypeNumeric is the number page.
	TypeNumeric
	// TypeSymbolic is the symbol page.
	TypeSymbolic
	// TypeEmojis is the emoji picker page.
	TypeEmojis
)

// String returns the canonical type name.
func (t Type) String() string {
	switch t {
	case TypeAlphabetic:
		return "alphabetic"
	case TypeNumeric:
		return "numeric"
	case TypeSymbolic:
		return "symbolic"
	case TypeEmojis:
		return "emojis"
	default:
		return "unknown"
	}
}

// ParseType converts a canonical type name into a Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "alphabetic":
		return TypeAlphabetic, nil
	case "numeric":
		return TypeNumeric, nil
	case "symbolic":
		return TypeSymbolic, nil
	case "emojis":
		return TypeEmojis, nil
	default:
		return TypeAlphabetic, fmt.Errorf("keyboard: unknown keyboard type %q", name)
	}
}

// Casing describes the shift state of the alphabetic page.
type Casing uint8

const (
	// CasingLowercased types lowercase characters.
	CasingLowercased Casing = iota
	// CasingUppercased types one uppercase character, then the behavior
	// policy returns the keyboard to lowercase.
	CasingUppercased
	// CasingCapsLocked types uppercase characters until toggled off.
	CasingCapsLocked
)

// String returns the canonical casing name.
func (c Casing) String() string {
	switch c {
	case CasingLowercased:
		return "lowercased"
	case CasingUppercased:
		return "uppercased"
	case CasingCapsLocked:
		return "capsLocked"
	default:
		return "unknown"
	}
}

// ParseCasing converts a canonical casing name into a Casing.
func ParseCasing(name string) (Casing, error) {
	switch name {
	case "lowercased":
		return CasingLowercased, nil
	case "uppercased":
		return CasingUppercased, nil
	case "capsLocked":
		return CasingCapsLocked, nil
	default:
		return CasingLowercased, fmt.Errorf("keyboard: unknown casing %q", name)
	}
}

// IsUppercased reports whether characters should currently be typed
// uppercase.
func (c Casing) IsUppercased() bool {
	return c == CasingUppercased || c == CasingCapsLocked
}

// Mode pairs a keyboard type with a casing. It is the unit the behavior
// oracle answers mode-switch queries with.
type Mode struct {
	Type   Type
	Casing Casing
}

// String returns "type/casing", e.g. "alphabetic/uppercased".
func (m Mode) String() string {
	return m.Type.String() + "/" + m.Casing.String()
}

// SpaceLongPressBehavior selects what a long press on the space key does.
type SpaceLongPressBehavior uint8

const (
	// SpaceDoesNothing disables the space long-press shortcut.
	SpaceDoesNothing SpaceLongPressBehavior = iota
	// SpaceOpensLocaleMenu presents the locale context menu.
	SpaceOpensLocaleMenu
	// SpaceMovesInputCursor turns the space key into a trackpad that
	// moves the input cursor while dragging.
	SpaceMovesInputCursor
)

// String returns the canonical behavior name.
func (b SpaceLongPressBehavior) String() string {
	switch b {
	case SpaceDoesNothing:
		return "none"
	case SpaceOpensLocaleMenu:
		return "localeMenu"
	case SpaceMovesInputCursor:
		return "moveCursor"
	default:
		return "unknown"
	}
}

// ParseSpaceLongPressBehavior converts a canonical behavior name into a
// SpaceLongPressBehavior.
func ParseSpaceLongPressBehavior(name string) (SpaceLongPressBehavior, error) {
	switch name {
	case "none":
		return SpaceDoesNothing, nil
	case "localeMenu":
		return SpaceOpensLocaleMenu, nil
	case "moveCursor":
		return SpaceMovesInputCursor, nil
	default:
		return SpaceDoesNothing, fmt.Errorf("keyboard: unknown space long-press behavior %q", name)
	}
}

// AutoSpaceState tracks the space the autocomplete coordinator inserted
// after an applied suggestion.
//
// The marker is set by at most one insertion and cleared exactly once:
// either a word delimiter removes the space and later reinserts it after
// itself, or a backspace swallows the space outright. It is never
// consumed by both paths.
type AutoSpaceState uint8

const (
	// AutoSpaceNone means no auto-inserted space is being tracked.
	AutoSpaceNone AutoSpaceState = iota
	// AutoSpaceInserted means the coordinator appended a space after the
	// last applied suggestion and the space is still in the document.
	AutoSpaceInserted
	// AutoSpaceRemoved means the tracked space was removed ahead of a
	// word delimiter and is pending reinsertion after it.
	AutoSpaceRemoved
)

// String returns the canonical state name.
func (s AutoSpaceState) String() string {
	switch s {
	case AutoSpaceNone:
		return "none"
	case AutoSpaceInserted:
		return "inserted"
	case AutoSpaceRemoved:
		return "removed"
	default:
		return "unknown"
	}
}
