// Package action defines the symbolic keyboard actions the engine
// dispatches on.
//
// An Action identifies a key by what it does, independent of rendering:
// a character, the space bar, a keyboard-type switch, and so on. Actions
// are small comparable values compared structurally, so they serve
// directly as override-map keys in the feedback configuration.
//
// The textual form accepted by Parse and produced by String is the one
// configuration files use:
//
//   - Plain keys: "space", "backspace", "newline", "shift",
//     "nextLocale", "dismissKeyboard"
//   - Parameterized keys: "character:a", "emoji:😀",
//     "switchType:numeric", "switchEmojiCategory:smileys"
package action
