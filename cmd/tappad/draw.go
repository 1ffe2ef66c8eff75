package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const helpLine = "Tab shift  ^T caps  ^L hold-space  ←/→ drag  ^N locale  ^O menu  ^E page  ^G emoji  Esc quit"

func (a *app) draw() {
	s := a.screen
	s.Clear()
	_, height := s.Size()

	title := fmt.Sprintf("tappad  %s  %s/%s  space:%s",
		a.ctx.Locale, a.ctx.Type, a.ctx.Casing, a.ctx.SpaceLongPress)
	a.drawLine(0, 0, tcell.StyleDefault.Reverse(true), title)
	a.drawLine(0, 1, tcell.StyleDefault.Dim(true), helpLine)

	row, col := a.drawDocument(3)
	s.ShowCursor(col, row)

	a.drawLine(0, height-2, tcell.StyleDefault.Dim(true), a.suggestionLine())
	a.drawLine(0, height-1, tcell.StyleDefault.Reverse(true), a.statusLine())

	s.Show()
}

func (a *app) drawLine(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawDocument renders the pad starting at the given row and returns
// the screen position of the input cursor.
func (a *app) drawDocument(top int) (row, col int) {
	before := a.pad.DocumentContextBeforeCursor()
	document := before + a.pad.DocumentContextAfterCursor()

	for i, line := range strings.Split(document, "\n") {
		a.drawLine(0, top+i, tcell.StyleDefault, line)
	}

	row = top + strings.Count(before, "\n")
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		col = len([]rune(before[i+1:]))
	} else {
		col = len([]rune(before))
	}
	return row, col
}

func (a *app) suggestionLine() string {
	suggestions := a.provider.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if s.IsAutocorrect {
			parts = append(parts, "*"+s.Text)
			continue
		}
		parts = append(parts, s.Text)
	}
	return "suggestions: " + strings.Join(parts, " | ")
}

func (a *app) statusLine() string {
	parts := []string{"autospace:" + a.ctx.AutoSpace.String()}
	if a.armed {
		parts = append(parts, "drag")
	}
	if len(a.pad.cues) > 0 {
		parts = append(parts, strings.Join(a.pad.cues, " "))
	}
	if m := a.dispatcher.Metrics(); m != nil {
		parts = append(parts, fmt.Sprintf("handled:%d", m.TotalHandled()))
	}
	if a.pad.status != "" {
		parts = append(parts, a.pad.status)
	}
	return strings.Join(parts, "  ")
}
