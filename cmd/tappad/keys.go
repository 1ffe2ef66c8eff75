package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/drag"
	"github.com/dshills/keytap/internal/gesture"
	"github.com/dshills/keytap/internal/keyboard"
)

// backspaceRepeatWindow treats backspace keys arriving this close
// together as key-repeat, the way a held backspace behaves on a touch
// keyboard.
const backspaceRepeatWindow = 150 * time.Millisecond

// handleKey translates one terminal key event into gestures. A normal
// keystroke becomes a press/release pair, matching what a touch host
// sends for a tap.
func (a *app) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		a.typeRune(ev.Rune())

	case tcell.KeyEnter:
		a.tap(action.Newline)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.backspace()

	case tcell.KeyTab:
		a.dispatcher.Handle(gesture.Release, action.Shift)

	case tcell.KeyCtrlT:
		a.dispatcher.Handle(gesture.DoubleTap, action.Shift)

	case tcell.KeyCtrlL:
		a.longPressSpace()

	case tcell.KeyLeft:
		a.moveCursor(-1)

	case tcell.KeyRight:
		a.moveCursor(1)

	case tcell.KeyCtrlN:
		a.dispatcher.Handle(gesture.Release, action.NextLocale)

	case tcell.KeyCtrlO:
		a.dispatcher.Handle(gesture.LongPress, action.NextLocale)

	case tcell.KeyCtrlE:
		a.cycleType()

	case tcell.KeyCtrlG:
		a.tap(action.Emoji("🙂"))

	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.dispatcher.Handle(gesture.Release, action.DismissKeyboard)
	}
}

func (a *app) tap(act action.Action) {
	a.dispatcher.Handle(gesture.Press, act)
	a.dispatcher.Handle(gesture.Release, act)
}

func (a *app) typeRune(r rune) {
	if r == ' ' {
		if a.armed {
			// Lifting the finger off the space key ends the drag; the
			// release types nothing.
			a.dispatcher.Handle(gesture.Release, action.Space)
			a.armed = false
			return
		}
		a.tap(action.Space)
		return
	}
	a.tap(action.Character(r))
}

func (a *app) backspace() {
	g := gesture.Press
	if time.Since(a.lastBackspace) < backspaceRepeatWindow {
		g = gesture.RepeatPress
	}
	a.lastBackspace = time.Now()
	a.dispatcher.Handle(g, action.Backspace)
}

// longPressSpace simulates holding the space key: press, then the long
// press that arms the drag session, then the initial drag update that
// pins the anchor.
func (a *app) longPressSpace() {
	a.dispatcher.Handle(gesture.Press, action.Space)
	a.dispatcher.Handle(gesture.LongPress, action.Space)
	a.armed = true
	a.dragX = 0
	a.dispatcher.HandleDrag(action.Space, drag.Point{}, drag.Point{})
}

// moveCursor feeds arrow keys into the space drag while one is armed;
// otherwise it moves the cursor directly on the pad.
func (a *app) moveCursor(chars int) {
	if a.armed && a.ctx.SpaceLongPress == keyboard.SpaceMovesInputCursor {
		a.dragX += float64(chars) * a.cfg.SpaceDrag.Sensitivity
		a.dispatcher.HandleDrag(action.Space, drag.Point{}, drag.Point{X: a.dragX})
		return
	}
	a.pad.AdjustTextPosition(chars)
}

func (a *app) cycleType() {
	var next keyboard.Type
	switch a.ctx.Type {
	case keyboard.TypeAlphabetic:
		next = keyboard.TypeNumeric
	case keyboard.TypeNumeric:
		next = keyboard.TypeSymbolic
	default:
		next = keyboard.TypeAlphabetic
	}
	a.tap(action.SwitchType(next))
}
