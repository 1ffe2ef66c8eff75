package dispatcher

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/autocomplete"
	"github.com/dshills/keytap/internal/behavior"
	"github.com/dshills/keytap/internal/drag"
	"github.com/dshills/keytap/internal/feedback"
	"github.com/dshills/keytap/internal/gesture"
	"github.com/dshills/keytap/internal/keyboard"
	"github.com/dshills/keytap/internal/replacement"
	"github.com/dshills/keytap/internal/surface"
)

// fakeProxy is an in-memory document split at the cursor.
type fakeProxy struct {
	before []rune
	after  []rune
}

func (p *fakeProxy) InsertText(text string) {
	p.before = append(p.before, []rune(text)...)
}

func (p *fakeProxy) DeleteBackward(n int) {
	for i := 0; i < n && len(p.before) > 0; i++ {
		p.before = p.before[:len(p.before)-1]
	}
}

func (p *fakeProxy) AdjustTextPosition(chars int) {
	for ; chars > 0 && len(p.after) > 0; chars-- {
		p.before = append(p.before, p.after[0])
		p.after = p.after[1:]
	}
	for ; chars < 0 && len(p.before) > 0; chars++ {
		p.after = append([]rune{p.before[len(p.before)-1]}, p.after...)
		p.before = p.before[:len(p.before)-1]
	}
}

func (p *fakeProxy) DocumentContextBeforeCursor() string { return string(p.before) }
func (p *fakeProxy) DocumentContextAfterCursor() string  { return string(p.after) }

func (p *fakeProxy) EndSentence(text string) {
	for len(p.before) > 0 && p.before[len(p.before)-1] == ' ' {
		p.before = p.before[:len(p.before)-1]
	}
	p.InsertText(text)
}

// fakeController drives a fakeProxy and counts controller calls.
type fakeController struct {
	proxy *fakeProxy

	autocompletes int
	syncs         int
	localeMenus   int
	dismissals    int
}

func (c *fakeController) Proxy() surface.Proxy {
	if c.proxy == nil {
		return nil
	}
	return c.proxy
}

func (c *fakeController) PerformEdit(e surface.Effect) { e(c) }
func (c *fakeController) PerformAutocomplete()         { c.autocompletes++ }
func (c *fakeController) PerformTextContextSync()      { c.syncs++ }
func (c *fakeController) PresentLocaleContextMenu()    { c.localeMenus++ }
func (c *fakeController) DismissKeyboard()             { c.dismissals++ }

// recordingBackend captures triggered cues in order.
type recordingBackend struct {
	audio  []feedback.AudioCue
	haptic []feedback.HapticCue
}

func (b *recordingBackend) TriggerAudio(cue feedback.AudioCue)   { b.audio = append(b.audio, cue) }
func (b *recordingBackend) TriggerHaptic(cue feedback.HapticCue) { b.haptic = append(b.haptic, cue) }

// scriptedBehavior answers fixed values and counts queries.
type scriptedBehavior struct {
	endSentence bool
	mode        keyboard.Mode
	switchMode  bool

	endQueries  int
	modeQueries int
}

func (b *scriptedBehavior) ShouldEndSentence(gesture.Gesture, action.Action) bool {
	b.endQueries++
	return b.endSentence
}

func (b *scriptedBehavior) EndSentenceText() string { return ". " }

func (b *scriptedBehavior) ShouldSwitchMode(gesture.Gesture, action.Action) (keyboard.Mode, bool) {
	b.modeQueries++
	return b.mode, b.switchMode
}

// staticProvider serves a fixed suggestion list.
type staticProvider []autocomplete.Suggestion

func (p staticProvider) Suggestions() []autocomplete.Suggestion { return p }

func newRig(before string) (*Dispatcher, *fakeController, *keyboard.Context) {
	ctx := keyboard.NewContext()
	ctrl := &fakeController{proxy: &fakeProxy{before: []rune(before)}}
	d := NewWithDefaults(ctx)
	d.SetController(ctrl)
	return d, ctrl, ctx
}

func typeRune(d *Dispatcher, r rune) {
	a := action.Character(r)
	d.Handle(gesture.Press, a)
	d.Handle(gesture.Release, a)
}

func document(ctrl *fakeController) string {
	return ctrl.proxy.DocumentContextBeforeCursor()
}

func TestHandleInsertsCharacter(t *testing.T) {
	d, ctrl, _ := newRig("")

	typeRune(d, 'a')

	if got := document(ctrl); got != "a" {
		t.Errorf("document = %q, want %q", got, "a")
	}
}

func TestHandleInsertsUppercaseUnderShift(t *testing.T) {
	d, ctrl, ctx := newRig("")
	ctx.Casing = keyboard.CasingUppercased

	d.Handle(gesture.Release, action.Character('a'))

	if got := document(ctrl); got != "A" {
		t.Errorf("document = %q, want %q", got, "A")
	}
}

func TestUnboundGestureIsInert(t *testing.T) {
	d, ctrl, _ := newRig("x")
	backend := &recordingBackend{}
	d.SetFeedback(feedback.NewPolicy(feedback.DefaultConfiguration(), backend))
	oracle := &scriptedBehavior{endSentence: true, switchMode: true}
	d.SetBehavior(oracle)

	d.Handle(gesture.DoubleTap, action.Character('a'))

	if got := document(ctrl); got != "x" {
		t.Errorf("document = %q, want untouched %q", got, "x")
	}
	if len(backend.audio) != 0 || len(backend.haptic) != 0 {
		t.Errorf("feedback fired for an unbound gesture: %v %v", backend.audio, backend.haptic)
	}
	if oracle.endQueries != 0 || oracle.modeQueries != 0 {
		t.Error("behavior oracle consulted for an unbound gesture")
	}
	if ctrl.autocompletes != 0 || ctrl.syncs != 0 {
		t.Error("refresh ran for an unbound gesture")
	}
}

func TestReplacementReplacesOriginalEffect(t *testing.T) {
	d, ctrl, _ := newRig("he said ")
	d.SetResolver(replacement.NewDefault())

	d.Handle(gesture.Release, action.Character('"'))

	if got := document(ctrl); got != "he said “" {
		t.Errorf("document = %q, want %q", got, "he said “")
	}
}

func TestReplacementApostropheScenario(t *testing.T) {
	d, ctrl, _ := newRig("can")
	d.SetResolver(replacement.NewDefault())

	d.Handle(gesture.Release, action.Character('\''))
	typeRune(d, 't')

	if got := document(ctrl); got != "can’t" {
		t.Errorf("document = %q, want %q", got, "can’t")
	}
}

func TestReplacementOnlyOnRelease(t *testing.T) {
	d, ctrl, _ := newRig("can")
	d.SetResolver(replacement.NewDefault())

	d.Handle(gesture.Press, action.Character('\''))

	if got := document(ctrl); got != "can" {
		t.Errorf("document = %q, want untouched %q", got, "can")
	}
}

func TestAutocorrectOnSpaceScenario(t *testing.T) {
	d, ctrl, ctx := newRig("teh")
	d.SetProvider(staticProvider{
		{Text: "teh"},
		{Text: "the", IsAutocorrect: true},
	})

	d.Handle(gesture.Release, action.Space)

	if got := document(ctrl); got != "the " {
		t.Fatalf("document = %q, want %q", got, "the ")
	}
	if ctx.AutoSpace != keyboard.AutoSpaceInserted {
		t.Fatalf("AutoSpace = %v, want %v", ctx.AutoSpace, keyboard.AutoSpaceInserted)
	}

	// The backspace swallows exactly the auto-inserted space and clears
	// the marker with no pending reinsertion.
	d.Handle(gesture.Press, action.Backspace)

	if got := document(ctrl); got != "the" {
		t.Errorf("document = %q, want %q", got, "the")
	}
	if ctx.AutoSpace != keyboard.AutoSpaceNone {
		t.Errorf("AutoSpace = %v, want %v", ctx.AutoSpace, keyboard.AutoSpaceNone)
	}

	d.Handle(gesture.Release, action.Character(','))
	if got := document(ctrl); got != "the," {
		t.Errorf("document = %q, want %q (no reinsertion without a matching removal)", got, "the,")
	}
}

func TestAutocorrectSkippedAtFreshWordBoundary(t *testing.T) {
	d, ctrl, ctx := newRig("the ")
	ctx.AtFreshWordBoundary = true
	d.SetProvider(staticProvider{{Text: "then", IsAutocorrect: true}})

	d.Handle(gesture.Release, action.Space)

	if got := document(ctrl); got != "the  " {
		t.Errorf("document = %q, want %q", got, "the  ")
	}
}

func TestDelimiterRelocatesAutoInsertedSpace(t *testing.T) {
	d, ctrl, ctx := newRig("teh")
	d.SetProvider(staticProvider{{Text: "the", IsAutocorrect: true}})

	d.Handle(gesture.Release, action.Space)
	if got := document(ctrl); got != "the " {
		t.Fatalf("document = %q, want %q", got, "the ")
	}

	// The host resyncs the boundary flag after the refresh step.
	ctx.AtFreshWordBoundary = true

	d.Handle(gesture.Release, action.Character(','))

	if got := document(ctrl); got != "the, " {
		t.Errorf("document = %q, want %q", got, "the, ")
	}
	if ctx.AutoSpace != keyboard.AutoSpaceNone {
		t.Errorf("AutoSpace = %v, want %v", ctx.AutoSpace, keyboard.AutoSpaceNone)
	}
}

func TestSuggestionFromHostToolbar(t *testing.T) {
	d, ctrl, ctx := newRig("teh")

	d.Coordinator().InsertSuggestion(autocomplete.Suggestion{Text: "the"}, true)

	if got := document(ctrl); got != "the " {
		t.Errorf("document = %q, want %q", got, "the ")
	}
	if ctx.AutoSpace != keyboard.AutoSpaceInserted {
		t.Errorf("AutoSpace = %v, want %v", ctx.AutoSpace, keyboard.AutoSpaceInserted)
	}
}

func TestSpaceDragScenario(t *testing.T) {
	d, ctrl, _ := newRig("hello")
	ctrl.proxy.after = []rune(" world")

	d.Handle(gesture.Press, action.Space)
	d.Handle(gesture.LongPress, action.Space)

	anchor := drag.Point{X: 40, Y: 12}
	d.HandleDrag(action.Space, anchor, anchor)

	if got := document(ctrl); got != "hello" {
		t.Fatalf("anchor pinning must not move the cursor, document = %q", got)
	}

	// One sensitivity unit of displacement moves the cursor one step.
	current := drag.Point{X: anchor.X + drag.DefaultSensitivity, Y: 12}
	d.HandleDrag(action.Space, anchor, current)

	if got := document(ctrl); got != "hello " {
		t.Errorf("document = %q, want cursor one step right (%q)", got, "hello ")
	}

	// The same absolute point produces no further movement.
	d.HandleDrag(action.Space, anchor, current)

	if got := document(ctrl); got != "hello " {
		t.Errorf("repeated point moved the cursor again: %q", got)
	}
}

func TestSpaceReleaseAfterLongPressTypesNothing(t *testing.T) {
	d, ctrl, _ := newRig("hello")

	d.Handle(gesture.Press, action.Space)
	d.Handle(gesture.LongPress, action.Space)
	d.Handle(gesture.Release, action.Space)

	if got := document(ctrl); got != "hello" {
		t.Fatalf("document = %q, release after a long press must not type a space", got)
	}

	// The next press starts a fresh session and space types again.
	d.Handle(gesture.Press, action.Space)
	d.Handle(gesture.Release, action.Space)

	if got := document(ctrl); got != "hello " {
		t.Errorf("document = %q, want %q", got, "hello ")
	}
}

func TestDragNeedsArming(t *testing.T) {
	d, ctrl, _ := newRig("hello")
	ctrl.proxy.after = []rune(" world")

	d.HandleDrag(action.Space, drag.Point{}, drag.Point{X: 80})

	if got := document(ctrl); got != "hello" {
		t.Errorf("unarmed drag moved the cursor: %q", got)
	}
}

func TestDragHonorsLongPressPreference(t *testing.T) {
	d, ctrl, ctx := newRig("hello")
	ctrl.proxy.after = []rune(" world")
	ctx.SpaceLongPress = keyboard.SpaceOpensLocaleMenu

	d.Handle(gesture.Press, action.Space)
	d.Handle(gesture.LongPress, action.Space)

	if ctrl.localeMenus != 1 {
		t.Errorf("localeMenus = %d, want 1", ctrl.localeMenus)
	}

	d.HandleDrag(action.Space, drag.Point{}, drag.Point{X: 80})
	if got := document(ctrl); got != "hello" {
		t.Errorf("drag moved the cursor under the locale-menu preference: %q", got)
	}
}

func TestSpaceLongPressDoNothing(t *testing.T) {
	d, ctrl, ctx := newRig("hello")
	ctx.SpaceLongPress = keyboard.SpaceDoesNothing

	d.Handle(gesture.Press, action.Space)
	d.Handle(gesture.LongPress, action.Space)

	if ctrl.localeMenus != 0 {
		t.Errorf("localeMenus = %d, want 0", ctrl.localeMenus)
	}
	d.HandleDrag(action.Space, drag.Point{}, drag.Point{X: 80})
	if got := document(ctrl); got != "hello" {
		t.Errorf("drag moved the cursor under the do-nothing preference: %q", got)
	}
}

func TestFeedbackGating(t *testing.T) {
	d, _, _ := newRig("")
	backend := &recordingBackend{}
	d.SetFeedback(feedback.NewPolicy(feedback.DefaultConfiguration(), backend))

	d.Handle(gesture.Press, action.Character('a'))   // release is bound
	d.Handle(gesture.Release, action.Character('a')) // silent by the gate
	d.Handle(gesture.Press, action.Backspace)        // press itself is bound
	d.Handle(gesture.RepeatPress, action.Backspace)  // repeat is bound

	wantAudio := []feedback.AudioCue{feedback.AudioInput, feedback.AudioDelete, feedback.AudioDelete}
	if len(backend.audio) != len(wantAudio) {
		t.Fatalf("audio cues = %v, want %v", backend.audio, wantAudio)
	}
	for i, cue := range wantAudio {
		if backend.audio[i] != cue {
			t.Errorf("audio[%d] = %v, want %v", i, backend.audio[i], cue)
		}
	}
}

func TestSpaceLongPressFeedbackIsHapticOnly(t *testing.T) {
	d, _, _ := newRig("")
	backend := &recordingBackend{}
	d.SetFeedback(feedback.NewPolicy(feedback.DefaultConfiguration(), backend))

	d.Handle(gesture.Press, action.Space)
	backend.audio = nil
	backend.haptic = nil

	d.Handle(gesture.LongPress, action.Space)

	if len(backend.audio) != 0 {
		t.Errorf("space long press produced audio: %v", backend.audio)
	}
	if len(backend.haptic) != 1 || backend.haptic[0] != feedback.HapticMediumImpact {
		t.Errorf("haptic cues = %v, want [%v]", backend.haptic, feedback.HapticMediumImpact)
	}
}

func TestShiftCasing(t *testing.T) {
	d, _, ctx := newRig("")

	d.Handle(gesture.Release, action.Shift)
	if ctx.Casing != keyboard.CasingUppercased {
		t.Fatalf("Casing = %v, want %v", ctx.Casing, keyboard.CasingUppercased)
	}

	d.Handle(gesture.Release, action.Shift)
	if ctx.Casing != keyboard.CasingLowercased {
		t.Fatalf("Casing = %v, want %v", ctx.Casing, keyboard.CasingLowercased)
	}

	d.Handle(gesture.DoubleTap, action.Shift)
	if ctx.Casing != keyboard.CasingCapsLocked {
		t.Fatalf("Casing = %v, want %v", ctx.Casing, keyboard.CasingCapsLocked)
	}

	d.Handle(gesture.Release, action.Shift)
	if ctx.Casing != keyboard.CasingLowercased {
		t.Errorf("Casing = %v, want %v (shift releases caps lock)", ctx.Casing, keyboard.CasingLowercased)
	}
}

func TestSystemActions(t *testing.T) {
	d, ctrl, ctx := newRig("")
	ctx.Locales = []language.Tag{language.English, language.Swedish}
	ctx.Locale = language.English

	d.Handle(gesture.Release, action.SwitchType(keyboard.TypeNumeric))
	if ctx.Type != keyboard.TypeNumeric {
		t.Errorf("Type = %v, want %v", ctx.Type, keyboard.TypeNumeric)
	}

	d.Handle(gesture.Release, action.SwitchEmojiCategory("smileys"))
	if ctx.EmojiCategory != "smileys" {
		t.Errorf("EmojiCategory = %q, want %q", ctx.EmojiCategory, "smileys")
	}

	d.Handle(gesture.Release, action.NextLocale)
	if ctx.Locale != language.Swedish {
		t.Errorf("Locale = %v, want %v", ctx.Locale, language.Swedish)
	}

	d.Handle(gesture.LongPress, action.NextLocale)
	if ctrl.localeMenus != 1 {
		t.Errorf("localeMenus = %d, want 1", ctrl.localeMenus)
	}

	d.Handle(gesture.Release, action.DismissKeyboard)
	if ctrl.dismissals != 1 {
		t.Errorf("dismissals = %d, want 1", ctrl.dismissals)
	}
}

func TestEmojiInsertion(t *testing.T) {
	d, ctrl, ctx := newRig("")
	ctx.Casing = keyboard.CasingUppercased

	d.Handle(gesture.Release, action.Emoji("😀"))

	if got := document(ctrl); got != "😀" {
		t.Errorf("document = %q, want %q", got, "😀")
	}
}

func TestSentenceEndAndModeSwitchFlow(t *testing.T) {
	ctx := keyboard.NewContext()
	ctx.Casing = keyboard.CasingUppercased
	ctrl := &fakeController{proxy: &fakeProxy{}}
	d := NewWithDefaults(ctx)
	d.SetController(ctrl)
	d.SetBehavior(behavior.NewStandard(ctx, ctrl.Proxy))

	typeRune(d, 'h')
	typeRune(d, 'i')
	d.Handle(gesture.Release, action.Space)
	d.Handle(gesture.Release, action.Space)

	if got := document(ctrl); got != "Hi. " {
		t.Fatalf("document = %q, want %q", got, "Hi. ")
	}
	if ctx.Casing != keyboard.CasingUppercased {
		t.Fatalf("Casing = %v, want %v (capitalized at the new sentence)", ctx.Casing, keyboard.CasingUppercased)
	}

	typeRune(d, 't')

	if got := document(ctrl); got != "Hi. T" {
		t.Errorf("document = %q, want %q", got, "Hi. T")
	}
	if ctx.Casing != keyboard.CasingLowercased {
		t.Errorf("Casing = %v, want %v (single-shot shift spent)", ctx.Casing, keyboard.CasingLowercased)
	}
}

func TestOracleAnswersApplied(t *testing.T) {
	d, ctrl, ctx := newRig("word  ")
	oracle := &scriptedBehavior{
		endSentence: true,
		switchMode:  true,
		mode:        keyboard.Mode{Type: keyboard.TypeSymbolic, Casing: keyboard.CasingLowercased},
	}
	d.SetBehavior(oracle)

	d.Handle(gesture.Release, action.Space)

	if got := document(ctrl); got != "word. " {
		t.Errorf("document = %q, want %q", got, "word. ")
	}
	if ctx.Type != keyboard.TypeSymbolic {
		t.Errorf("Type = %v, want %v", ctx.Type, keyboard.TypeSymbolic)
	}
	if oracle.endQueries != 1 || oracle.modeQueries != 1 {
		t.Errorf("oracle queries = %d/%d, want 1/1", oracle.endQueries, oracle.modeQueries)
	}
}

func TestRefreshRunsAfterHandledGesture(t *testing.T) {
	d, ctrl, _ := newRig("")

	typeRune(d, 'a')

	// The press has no effect binding, so only the release refreshed.
	if ctrl.autocompletes != 1 || ctrl.syncs != 1 {
		t.Errorf("refresh counts = %d/%d, want 1/1", ctrl.autocompletes, ctrl.syncs)
	}
}

func TestNoControllerDegradesGracefully(t *testing.T) {
	ctx := keyboard.NewContext()
	d := NewWithDefaults(ctx)

	d.Handle(gesture.Release, action.Character('a'))
	d.Handle(gesture.Release, action.Shift)

	if ctx.Casing != keyboard.CasingUppercased {
		t.Errorf("Casing = %v, want %v (context effects run without a surface)", ctx.Casing, keyboard.CasingUppercased)
	}
}

func TestBackspaceDeletes(t *testing.T) {
	d, ctrl, _ := newRig("abc")

	d.Handle(gesture.Press, action.Backspace)
	d.Handle(gesture.RepeatPress, action.Backspace)

	if got := document(ctrl); got != "a" {
		t.Errorf("document = %q, want %q", got, "a")
	}
}

func TestCanHandle(t *testing.T) {
	d, _, _ := newRig("")

	tests := []struct {
		gesture gesture.Gesture
		action  action.Action
		want    bool
	}{
		{gesture.Release, action.Character('a'), true},
		{gesture.Press, action.Character('a'), false},
		{gesture.Press, action.Backspace, true},
		{gesture.RepeatPress, action.Backspace, true},
		{gesture.DoubleTap, action.Shift, true},
		{gesture.DoubleTap, action.Character('a'), false},
		{gesture.LongPress, action.Space, true},
		{gesture.LongPress, action.NextLocale, true},
		{gesture.LongPress, action.Character('a'), false},
		{gesture.Release, action.None, false},
	}

	for _, tt := range tests {
		if got := d.CanHandle(tt.gesture, tt.action); got != tt.want {
			t.Errorf("CanHandle(%v, %v) = %v, want %v", tt.gesture, tt.action, got, tt.want)
		}
	}
}

func TestPanicRecovery(t *testing.T) {
	ctx := keyboard.NewContext()
	ctrl := &fakeController{proxy: &fakeProxy{}}
	d := New(ctx, DefaultConfig().WithMetrics())
	d.SetController(ctrl)
	d.Registry().Override(gesture.Release, action.KindCharacter, func(action.Action, *keyboard.Context) surface.Effect {
		return func(surface.Controller) { panic("boom") }
	})

	d.Handle(gesture.Release, action.Character('a'))

	if got := d.Metrics().TotalPanics(); got != 1 {
		t.Errorf("TotalPanics() = %d, want 1", got)
	}
	// The pipeline survives and still refreshes.
	if ctrl.autocompletes != 1 {
		t.Errorf("autocompletes = %d, want 1", ctrl.autocompletes)
	}
}

func TestPanicPropagatesWhenRecoveryDisabled(t *testing.T) {
	ctx := keyboard.NewContext()
	d := New(ctx, DefaultConfig().WithPanicRecovery(false))
	d.Registry().Override(gesture.Release, action.KindCharacter, func(action.Action, *keyboard.Context) surface.Effect {
		return func(surface.Controller) { panic("boom") }
	})

	defer func() {
		if recover() == nil {
			t.Error("expected the effect panic to propagate")
		}
	}()
	d.Handle(gesture.Release, action.Character('a'))
}

func TestMetricsCollection(t *testing.T) {
	ctx := keyboard.NewContext()
	ctrl := &fakeController{proxy: &fakeProxy{before: []rune("can")}}
	d := New(ctx, DefaultConfig().WithMetrics())
	d.SetController(ctrl)
	d.SetResolver(replacement.NewDefault())
	d.SetProvider(staticProvider{{Text: "can", IsAutocorrect: true}})

	typeRune(d, 'a') // press suppressed, release handled
	d.Handle(gesture.DoubleTap, action.Character('a'))
	d.Handle(gesture.Release, action.Character('\'')) // replays as a curly apostrophe

	m := d.Metrics()
	if got := m.TotalHandled(); got != 2 {
		t.Errorf("TotalHandled() = %d, want 2", got)
	}
	if got := m.TotalSuppressed(); got != 2 {
		t.Errorf("TotalSuppressed() = %d, want 2", got)
	}
	if got := m.TotalReplacements(); got != 1 {
		t.Errorf("TotalReplacements() = %d, want 1", got)
	}

	stats := m.ActionStats(action.KindCharacter)
	if stats == nil || stats.HandleCount != 2 {
		t.Errorf("ActionStats(character) = %+v, want HandleCount 2", stats)
	}

	snap := m.Snapshot()
	if snap.TotalHandled != 2 || snap.ActionKinds != 1 {
		t.Errorf("Snapshot() = %+v", snap)
	}

	m.Reset()
	if m.TotalHandled() != 0 {
		t.Error("Reset() left counters behind")
	}
}

func TestMetricsDisabledByDefault(t *testing.T) {
	d, _, _ := newRig("")
	if d.Metrics() != nil {
		t.Error("metrics should be nil when disabled")
	}
}
