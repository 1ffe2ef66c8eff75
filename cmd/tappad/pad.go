package main

import (
	"strings"

	"github.com/dshills/keytap/internal/autocomplete"
	"github.com/dshills/keytap/internal/feedback"
	"github.com/dshills/keytap/internal/surface"
)

// pad is the in-memory document behind the demo. The engine edits it
// through the surface interfaces exactly as it would a host text field:
// two rune halves split at the input cursor.
type pad struct {
	before []rune
	after  []rune

	autocompletes int
	syncs         int

	cues      []string
	status    string
	onDismiss func()
}

func newPad() *pad {
	return &pad{}
}

func (p *pad) InsertText(text string) {
	p.before = append(p.before, []rune(text)...)
}

func (p *pad) DeleteBackward(n int) {
	for i := 0; i < n && len(p.before) > 0; i++ {
		p.before = p.before[:len(p.before)-1]
	}
}

func (p *pad) AdjustTextPosition(chars int) {
	for ; chars > 0 && len(p.after) > 0; chars-- {
		p.before = append(p.before, p.after[0])
		p.after = p.after[1:]
	}
	for ; chars < 0 && len(p.before) > 0; chars++ {
		p.after = append([]rune{p.before[len(p.before)-1]}, p.after...)
		p.before = p.before[:len(p.before)-1]
	}
}

func (p *pad) DocumentContextBeforeCursor() string { return string(p.before) }
func (p *pad) DocumentContextAfterCursor() string  { return string(p.after) }

func (p *pad) EndSentence(text string) {
	for len(p.before) > 0 && p.before[len(p.before)-1] == ' ' {
		p.before = p.before[:len(p.before)-1]
	}
	p.InsertText(text)
}

func (p *pad) Proxy() surface.Proxy              { return p }
func (p *pad) PerformEdit(effect surface.Effect) { effect(p) }
func (p *pad) PerformAutocomplete()              { p.autocompletes++ }
func (p *pad) PerformTextContextSync()           { p.syncs++ }

func (p *pad) PresentLocaleContextMenu() {
	p.status = "locale menu requested"
}

func (p *pad) DismissKeyboard() {
	if p.onDismiss != nil {
		p.onDismiss()
	}
}

// noteCue keeps the most recent feedback cues for the status line.
func (p *pad) noteCue(cue string) {
	p.cues = append(p.cues, cue)
	if len(p.cues) > 3 {
		p.cues = p.cues[len(p.cues)-3:]
	}
}

// statusBackend surfaces feedback cues in the status line in place of
// sounds and vibration.
type statusBackend struct {
	pad *pad
}

func (b *statusBackend) TriggerAudio(cue feedback.AudioCue) {
	b.pad.noteCue("audio:" + cue.String())
}

func (b *statusBackend) TriggerHaptic(cue feedback.HapticCue) {
	b.pad.noteCue("haptic:" + cue.String())
}

// corrections is the demo autocorrect dictionary.
var corrections = map[string]string{
	"teh":     "the",
	"adn":     "and",
	"woudl":   "would",
	"thier":   "their",
	"freind":  "friend",
	"recieve": "receive",
}

// demoProvider suggests the composing word itself plus a dictionary
// correction when one exists.
type demoProvider struct {
	pad *pad
}

func (p *demoProvider) Suggestions() []autocomplete.Suggestion {
	word := composingWord(p.pad.DocumentContextBeforeCursor())
	if word == "" {
		return nil
	}
	suggestions := []autocomplete.Suggestion{{Text: word}}
	if fix, ok := corrections[strings.ToLower(word)]; ok {
		suggestions = append(suggestions, autocomplete.Suggestion{Text: fix, IsAutocorrect: true})
	}
	return suggestions
}

// composingWord returns the word fragment between the last whitespace
// and the cursor.
func composingWord(before string) string {
	i := strings.LastIndexAny(before, " \n\t")
	return before[i+1:]
}
