package keyboard

import "golang.org/x/text/language"

// Context is the mutable keyboard session state.
//
// It is owned by the hosting session, passed explicitly to the engine
// components at construction, and mutated only from the synchronous
// input path (plus the host itself). No locking is required because
// there is a single writer.
type Context struct {
	// Locale is the active keyboard locale.
	Locale language.Tag

	// Locales is the ordered locale list the nextLocale action cycles
	// through. It may be empty, in which case cycling is a no-op.
	Locales []language.Tag

	// Type is the current keyboard page.
	Type Type

	// Casing is the current shift state of the alphabetic page.
	Casing Casing

	// AtFreshWordBoundary reports whether the input cursor sits at the
	// start of a new word. The host refreshes it on text-context sync.
	AtFreshWordBoundary bool

	// AutoSpace is the pending auto-inserted-space marker. Only the
	// autocomplete coordinator transitions it.
	AutoSpace AutoSpaceState

	// SpaceLongPress selects what a long press on the space key does.
	SpaceLongPress SpaceLongPressBehavior

	// EmojiCategory is the last category selected in the external emoji
	// picker.
	EmojiCategory string
}

// NewContext creates a context with English as the single locale, the
// alphabetic page lowercased, and the space long press moving the input
// cursor.
func NewContext() *Context {
	return &Context{
		Locale:         language.English,
		Locales:        []language.Tag{language.English},
		Type:           TypeAlphabetic,
		Casing:         CasingLowercased,
		SpaceLongPress: SpaceMovesInputCursor,
	}
}

// Mode returns the current keyboard mode.
func (c *Context) Mode() Mode {
	return Mode{Type: c.Type, Casing: c.Casing}
}

// SetMode applies a keyboard mode.
func (c *Context) SetMode(m Mode) {
	c.Type = m.Type
	c.Casing = m.Casing
}

// SetLocale replaces the active locale.
func (c *Context) SetLocale(tag language.Tag) {
	c.Locale = tag
}

// SelectNextLocale advances the active locale to the next entry of the
// locale list, wrapping at the end. When the active locale is not in the
// list, the first entry is selected. An empty list leaves the locale
// untouched.
func (c *Context) SelectNextLocale() {
	if len(c.Locales) == 0 {
		return
	}
	for i, tag := range c.Locales {
		if tag == c.Locale {
			c.Locale = c.Locales[(i+1)%len(c.Locales)]
			return
		}
	}
	c.Locale = c.Locales[0]
}
