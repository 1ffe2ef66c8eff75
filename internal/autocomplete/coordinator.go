package autocomplete

import (
	"strings"
	"unicode"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/dshills/keytap/internal/keyboard"
	"github.com/dshills/keytap/internal/surface"
)

// Coordinator applies suggestions to the editing surface and tracks the
// auto-inserted space around them.
//
// The marker lives on the keyboard context and is set by at most one
// insertion and cleared exactly once: either a word delimiter removes
// the space and reinserts it after itself, or a backspace swallows it
// outright. The two paths never both consume it.
type Coordinator struct {
	context *keyboard.Context
	proxy   func() surface.Proxy
}

// NewCoordinator creates a coordinator over the given context. The proxy
// accessor is consulted per operation; it may return nil when the host
// surface is gone, which degrades every operation to a no-op.
func NewCoordinator(ctx *keyboard.Context, proxy func() surface.Proxy) *Coordinator {
	if proxy == nil {
		proxy = func() surface.Proxy { return nil }
	}
	return &Coordinator{context: ctx, proxy: proxy}
}

// InsertSuggestion replaces the composing word with the suggestion text.
// When insertSpace is set and neither side of the cursor already touches
// a space, one space is appended and recorded as auto-inserted.
func (c *Coordinator) InsertSuggestion(s Suggestion, insertSpace bool) {
	p := c.proxy()
	if p == nil {
		return
	}

	replaceComposingWord(p, s.Text)

	if !insertSpace {
		return
	}
	if strings.HasSuffix(p.DocumentContextBeforeCursor(), " ") {
		return
	}
	if strings.HasPrefix(p.DocumentContextAfterCursor(), " ") {
		return
	}
	p.InsertText(" ")
	c.context.AutoSpace = keyboard.AutoSpaceInserted
	log.WithField("text", s.Text).Debug("autocomplete: suggestion applied with auto space")
}

// MarkAutoInsertedSpace records the space in front of the cursor as
// auto-inserted without editing. The dispatcher calls it for the space
// that commits an autocorrection, so delimiter relocation and backspace
// clearing treat that space like a suggestion-inserted one. Without a
// space in front of the cursor nothing is recorded.
func (c *Coordinator) MarkAutoInsertedSpace() {
	p := c.proxy()
	if p == nil {
		return
	}
	if strings.HasSuffix(p.DocumentContextBeforeCursor(), " ") {
		c.context.AutoSpace = keyboard.AutoSpaceInserted
	}
}

// TryRemoveAutoInsertedSpace deletes exactly the tracked auto-inserted
// space ahead of a word delimiter. When the tracked space is no longer
// in front of the cursor the marker is dropped without an edit.
func (c *Coordinator) TryRemoveAutoInsertedSpace() {
	if c.context.AutoSpace != keyboard.AutoSpaceInserted {
		return
	}
	p := c.proxy()
	if p == nil {
		return
	}
	if !strings.HasSuffix(p.DocumentContextBeforeCursor(), " ") {
		c.context.AutoSpace = keyboard.AutoSpaceNone
		return
	}
	p.DeleteBackward(1)
	c.context.AutoSpace = keyboard.AutoSpaceRemoved
}

// TryReinsertAutoRemovedSpace restores the space a preceding
// TryRemoveAutoInsertedSpace took out, then clears the marker.
func (c *Coordinator) TryReinsertAutoRemovedSpace() {
	if c.context.AutoSpace != keyboard.AutoSpaceRemoved {
		return
	}
	p := c.proxy()
	if p == nil {
		return
	}
	p.InsertText(" ")
	c.context.AutoSpace = keyboard.AutoSpaceNone
}

// ClearAutoSpaceForBackspace drops the marker when a backspace is about
// to swallow the tracked space, so no reinsertion is left pending.
func (c *Coordinator) ClearAutoSpaceForBackspace() {
	if c.context.AutoSpace != keyboard.AutoSpaceInserted {
		return
	}
	p := c.proxy()
	if p == nil {
		return
	}
	if strings.HasSuffix(p.DocumentContextBeforeCursor(), " ") {
		c.context.AutoSpace = keyboard.AutoSpaceNone
	}
}

// replaceComposingWord deletes the word fragment before the cursor and
// inserts the replacement text in its place.
func replaceComposingWord(p surface.Proxy, text string) {
	word := composingWord(p.DocumentContextBeforeCursor())
	if n := utf8.RuneCountInString(word); n > 0 {
		p.DeleteBackward(n)
	}
	p.InsertText(text)
}

// composingWord returns the trailing word fragment of the text before
// the cursor: the run of letters, digits, and apostrophes after the last
// delimiter.
func composingWord(before string) string {
	end := len(before)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(before[:end])
		if !isWordRune(r) {
			break
		}
		end -= size
	}
	return before[end:]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’'
}
