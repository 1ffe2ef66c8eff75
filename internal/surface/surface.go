// Package surface defines the capability interfaces the engine needs from
// the host editing surface: a text document proxy and a keyboard controller.
package surface

// Effect mutates the editing surface for one handled gesture.
// A nil Effect means no binding exists and the gesture is inert.
type Effect func(ctrl Controller)

// Proxy abstracts the host text document around the input cursor.
type Proxy interface {
	// Editing
	InsertText(text string)
	DeleteBackward(n int)
	AdjustTextPosition(chars int)

	// Reading
	DocumentContextBeforeCursor() string
	DocumentContextAfterCursor() string

	// EndSentence replaces the trailing space run before the cursor with
	// the given sentence terminator.
	EndSentence(text string)
}

// Controller abstracts the host keyboard controller driving a Proxy.
type Controller interface {
	// Proxy returns the document proxy for the active input field.
	Proxy() Proxy

	// PerformEdit executes a single effect against the surface.
	PerformEdit(effect Effect)

	// Refresh operations
	PerformAutocomplete()
	PerformTextContextSync()

	// Keyboard chrome
	PresentLocaleContextMenu()
	DismissKeyboard()
}
