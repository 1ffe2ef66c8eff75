package dispatcher

import (
	"unicode"

	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/gesture"
	"github.com/dshills/keytap/internal/keyboard"
	"github.com/dshills/keytap/internal/surface"
)

// standardEffect returns the built-in effect for a (gesture, action)
// pair, or nil when the pair has none. Resolution is pure over the
// arguments; the returned effect reads the context again when it runs,
// so casing applies as of execution time.
func standardEffect(g gesture.Gesture, a action.Action, ctx *keyboard.Context) surface.Effect {
	switch g {
	case gesture.Release:
		return standardReleaseEffect(a, ctx)
	case gesture.Press, gesture.RepeatPress:
		if a.Kind == action.KindBackspace {
			return deleteBackward
		}
	case gesture.LongPress:
		return standardLongPressEffect(a, ctx)
	case gesture.DoubleTap:
		if a.Kind == action.KindShift {
			return func(surface.Controller) {
				ctx.Casing = keyboard.CasingCapsLocked
			}
		}
	}
	return nil
}

func standardReleaseEffect(a action.Action, ctx *keyboard.Context) surface.Effect {
	switch a.Kind {
	case action.KindCharacter:
		return insertCharacter(a.Char, ctx)

	case action.KindEmoji:
		return insertText(a.Text)

	case action.KindSpace:
		return insertText(" ")

	case action.KindNewline:
		return insertText("\n")

	case action.KindShift:
		return func(surface.Controller) {
			if ctx.Casing == keyboard.CasingLowercased {
				ctx.Casing = keyboard.CasingUppercased
			} else {
				ctx.Casing = keyboard.CasingLowercased
			}
		}

	case action.KindSwitchType:
		target := a.Target
		return func(surface.Controller) {
			ctx.Type = target
		}

	case action.KindSwitchEmojiCategory:
		category := a.Text
		return func(surface.Controller) {
			ctx.EmojiCategory = category
		}

	case action.KindNextLocale:
		return func(surface.Controller) {
			ctx.SelectNextLocale()
		}

	case action.KindDismissKeyboard:
		return func(c surface.Controller) {
			if c != nil {
				c.DismissKeyboard()
			}
		}
	}
	return nil
}

func standardLongPressEffect(a action.Action, ctx *keyboard.Context) surface.Effect {
	switch a.Kind {
	case action.KindSpace:
		switch ctx.SpaceLongPress {
		case keyboard.SpaceOpensLocaleMenu:
			return presentLocaleMenu
		case keyboard.SpaceMovesInputCursor:
			// The drag session arms in the bookkeeping step; the empty
			// effect keeps the binding alive for feedback gating.
			return func(surface.Controller) {}
		}
		return nil

	case action.KindNextLocale:
		return presentLocaleMenu
	}
	return nil
}

// insertCharacter types the rune under the casing in effect when the
// effect executes.
func insertCharacter(r rune, ctx *keyboard.Context) surface.Effect {
	return func(c surface.Controller) {
		p := proxyOf(c)
		if p == nil {
			return
		}
		ch := r
		if ctx.Casing.IsUppercased() {
			ch = unicode.ToUpper(ch)
		}
		p.InsertText(string(ch))
	}
}

func insertText(text string) surface.Effect {
	return func(c surface.Controller) {
		if p := proxyOf(c); p != nil {
			p.InsertText(text)
		}
	}
}

func deleteBackward(c surface.Controller) {
	if p := proxyOf(c); p != nil {
		p.DeleteBackward(1)
	}
}

func presentLocaleMenu(c surface.Controller) {
	if c != nil {
		c.PresentLocaleContextMenu()
	}
}

func proxyOf(c surface.Controller) surface.Proxy {
	if c == nil {
		return nil
	}
	return c.Proxy()
}
