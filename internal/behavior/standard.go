package behavior

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/gesture"
	"github.com/dshills/keytap/internal/keyboard"
	"github.com/dshills/keytap/internal/surface"
)

// Standard is the classic typing policy:
//
//   - a second space right after a word ends the sentence,
//   - a typed character consumes a single-shot shift,
//   - space or newline at a new sentence re-capitalizes,
//   - space or newline on a numeric or symbolic keyboard returns to
//     alphabetic.
type Standard struct {
	context *keyboard.Context
	proxy   func() surface.Proxy
	endText string
}

// NewStandard returns the standard policy reading document state through
// the given proxy accessor. A nil accessor degrades the document-sensitive
// answers to false.
func NewStandard(ctx *keyboard.Context, proxy func() surface.Proxy) *Standard {
	if proxy == nil {
		proxy = func() surface.Proxy { return nil }
	}
	return &Standard{
		context: ctx,
		proxy:   proxy,
		endText: DefaultEndSentenceText,
	}
}

// SetEndSentenceText overrides the sentence terminator.
func (s *Standard) SetEndSentenceText(text string) {
	s.endText = text
}

// EndSentenceText returns the configured sentence terminator.
func (s *Standard) EndSentenceText() string {
	return s.endText
}

// ShouldEndSentence answers true for a released space when the text
// before the cursor ends with a word followed by two spaces.
func (s *Standard) ShouldEndSentence(g gesture.Gesture, a action.Action) bool {
	if g != gesture.Release || a != action.Space {
		return false
	}
	p := s.proxy()
	if p == nil {
		return false
	}
	before := p.DocumentContextBeforeCursor()
	if !strings.HasSuffix(before, "  ") {
		return false
	}
	word := strings.TrimRight(before, " ")
	if word == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(word)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ShouldSwitchMode inspects the context and document after a release and
// reports the mode the keyboard should present next.
func (s *Standard) ShouldSwitchMode(g gesture.Gesture, a action.Action) (keyboard.Mode, bool) {
	if g != gesture.Release {
		return keyboard.Mode{}, false
	}
	current := s.context.Mode()

	switch {
	case a.Kind == action.KindCharacter:
		// A single-shot shift is spent by the character it capitalized.
		if current.Casing == keyboard.CasingUppercased {
			return keyboard.Mode{Type: current.Type, Casing: keyboard.CasingLowercased}, true
		}

	case a == action.Space || a == action.Newline:
		next := current
		if current.Type == keyboard.TypeNumeric || current.Type == keyboard.TypeSymbolic {
			next.Type = keyboard.TypeAlphabetic
		}
		if next.Type == keyboard.TypeAlphabetic && next.Casing != keyboard.CasingCapsLocked && s.cursorAtNewSentence() {
			next.Casing = keyboard.CasingUppercased
		}
		if next != current {
			return next, true
		}
	}
	return keyboard.Mode{}, false
}

func (s *Standard) cursorAtNewSentence() bool {
	p := s.proxy()
	if p == nil {
		return false
	}
	return isAtNewSentence(p.DocumentContextBeforeCursor())
}

// isAtNewSentence reports whether the text before the cursor sits at the
// start of a new sentence: an empty or all-whitespace document, or a
// sentence delimiter followed by trailing whitespace.
func isAtNewSentence(before string) bool {
	trimmed := strings.TrimRight(before, " \n\t")
	if trimmed == "" {
		return true
	}
	if len(trimmed) == len(before) {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(trimmed)
	switch r {
	case '.', '!', '?':
		return true
	}
	return false
}
