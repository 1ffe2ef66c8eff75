package dispatcher

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"

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

// Dispatcher coordinates gesture handling for one keyboard session.
//
// The context is required; every collaborator is optional and injected
// through a SetX method. A missing collaborator degrades its pipeline
// step to a no-op, never a fault.
type Dispatcher struct {
	context    *keyboard.Context
	controller surface.Controller

	registry    *Registry
	resolver    *replacement.Resolver
	behavior    behavior.Behavior
	feedback    *feedback.Policy
	provider    autocomplete.Provider
	coordinator *autocomplete.Coordinator

	spaceDrag *drag.SpaceHandler
	session   dragSession

	config  Config
	metrics *Metrics
}

// New creates a dispatcher for the given session context.
func New(ctx *keyboard.Context, config Config) *Dispatcher {
	d := &Dispatcher{
		context:  ctx,
		registry: NewRegistry(),
		config:   config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	d.spaceDrag = drag.NewSpaceHandler(config.DragSensitivity)
	d.coordinator = autocomplete.NewCoordinator(ctx, d.proxy)
	return d
}

// NewWithDefaults creates a dispatcher with the default configuration.
func NewWithDefaults(ctx *keyboard.Context) *Dispatcher {
	return New(ctx, DefaultConfig())
}

// SetController sets the host keyboard controller. The dispatcher holds
// it as a non-owning handle.
func (d *Dispatcher) SetController(ctrl surface.Controller) {
	d.controller = ctrl
}

// SetFeedback sets the feedback policy.
func (d *Dispatcher) SetFeedback(policy *feedback.Policy) {
	d.feedback = policy
}

// SetBehavior sets the behavior oracle.
func (d *Dispatcher) SetBehavior(b behavior.Behavior) {
	d.behavior = b
}

// SetResolver sets the replacement resolver.
func (d *Dispatcher) SetResolver(r *replacement.Resolver) {
	d.resolver = r
}

// SetProvider sets the autocomplete suggestion provider.
func (d *Dispatcher) SetProvider(p autocomplete.Provider) {
	d.provider = p
}

// Context returns the session context.
func (d *Dispatcher) Context() *keyboard.Context {
	return d.context
}

// Registry returns the effect registry for host overrides.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the metrics collector, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// Coordinator returns the auto-space coordinator. Hosts use it to apply
// suggestions picked from their suggestion bar.
func (d *Dispatcher) Coordinator() *autocomplete.Coordinator {
	return d.coordinator
}

// CanHandle reports whether the pair currently resolves to an effect.
func (d *Dispatcher) CanHandle(g gesture.Gesture, a action.Action) bool {
	return d.resolveEffect(g, a) != nil
}

// Handle runs the dispatch pipeline for one gesture on one action.
func (d *Dispatcher) Handle(g gesture.Gesture, a action.Action) {
	d.handle(g, a, false)
}

func (d *Dispatcher) handle(g gesture.Gesture, a action.Action, replayed bool) {
	start := time.Now()

	if !replayed && d.resolver != nil {
		if repl, ok := d.resolver.Resolve(g, a, d.context.Locale, d.beforeCursor()); ok {
			log.WithFields(log.Fields{"from": a, "to": repl}).Debug("dispatcher: replaying replacement")
			if d.metrics != nil {
				d.metrics.RecordReplacement()
			}
			d.handle(g, repl, true)
			return
		}
	}

	d.triggerFeedback(g, a)
	d.updateDragSession(g, a)

	effect := d.resolveEffect(g, a)
	if effect == nil {
		if d.metrics != nil {
			d.metrics.RecordSuppressed()
		}
		return
	}

	if g == gesture.Release && a.ShouldRemoveAutoInsertedSpace() {
		d.coordinator.TryRemoveAutoInsertedSpace()
	}
	if a.Kind == action.KindBackspace {
		d.coordinator.ClearAutoSpaceForBackspace()
	}
	autocorrected := false
	if g == gesture.Release {
		autocorrected = d.tryApplyAutocorrect(a)
	}

	d.execute(g, a, effect)

	if autocorrected && a == action.Space {
		// The space that committed the correction behaves like a
		// suggestion-inserted one: delimiters relocate it, a backspace
		// clears it.
		d.coordinator.MarkAutoInsertedSpace()
	}
	if g == gesture.Release && a.ShouldReinsertAutoRemovedSpace() {
		d.coordinator.TryReinsertAutoRemovedSpace()
	}

	d.tryEndSentence(g, a)
	d.trySwitchMode(g, a)

	if d.controller != nil {
		d.controller.PerformAutocomplete()
		d.controller.PerformTextContextSync()
	}

	if d.metrics != nil {
		d.metrics.RecordHandled(a.Kind, time.Since(start))
	}
}

// HandleDrag translates pointer movement on the space key into input
// cursor steps. It only acts while the session armed by a space
// longPress is live and the context prefers cursor movement. The first
// update after arming pins the anchor to the current point; later
// updates apply only the step delta not yet applied.
func (d *Dispatcher) HandleDrag(a action.Action, from, to drag.Point) {
	if a != action.Space || !d.session.armed {
		return
	}
	if d.context.SpaceLongPress != keyboard.SpaceMovesInputCursor {
		return
	}

	if !d.session.anchorSet {
		d.session.anchor = to
		d.session.anchorSet = true
		d.spaceDrag.Begin(to)
		return
	}

	delta := d.spaceDrag.Move(d.session.anchor, to)
	if delta == 0 {
		return
	}
	if p := d.proxy(); p != nil {
		p.AdjustTextPosition(delta)
	}
}

// resolveEffect is pipeline step four. A space release while the drag
// session is armed resolves to nil so that lifting the finger after a
// long press never types a space.
func (d *Dispatcher) resolveEffect(g gesture.Gesture, a action.Action) surface.Effect {
	if g == gesture.Release && a == action.Space && d.session.armed {
		return nil
	}
	return d.registry.Resolve(g, a, d.context)
}

// triggerFeedback applies the feedback gate: a press fires when the
// release is bound (the common character keys), and any non-release
// gesture fires when it is bound itself (backspace presses, repeats,
// long presses, double taps).
func (d *Dispatcher) triggerFeedback(g gesture.Gesture, a action.Action) {
	if d.feedback == nil {
		return
	}
	if g == gesture.Press && d.CanHandle(gesture.Release, a) {
		d.feedback.Trigger(g, a)
		return
	}
	if g != gesture.Release && d.CanHandle(g, a) {
		d.feedback.Trigger(g, a)
	}
}

// updateDragSession is pipeline step three: space presses clear the
// session, space long presses arm it.
func (d *Dispatcher) updateDragSession(g gesture.Gesture, a action.Action) {
	if a != action.Space {
		return
	}
	switch g {
	case gesture.Press:
		d.session.clear()
	case gesture.LongPress:
		d.session.arm()
	}
}

// tryApplyAutocorrect applies the first autocorrect-flagged suggestion
// before a word-committing release and reports whether it did. Skipped
// while a space cursor drag is in progress, and at a fresh word boundary
// where there is nothing to correct.
func (d *Dispatcher) tryApplyAutocorrect(a action.Action) bool {
	if d.provider == nil {
		return false
	}
	if !a.ShouldApplyAutocorrect() {
		return false
	}
	if d.context.AtFreshWordBoundary {
		return false
	}
	if d.session.armed {
		return false
	}
	s, ok := autocomplete.FirstAutocorrect(d.provider)
	if !ok {
		return false
	}
	log.WithField("suggestion", s.Text).Debug("dispatcher: applying autocorrect")
	d.coordinator.InsertSuggestion(s, false)
	if d.metrics != nil {
		d.metrics.RecordAutocorrect()
	}
	return true
}

func (d *Dispatcher) execute(g gesture.Gesture, a action.Action, effect surface.Effect) {
	if !d.config.RecoverPanics {
		d.performEdit(effect)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			log.Warnf("dispatcher: effect panic on %v %v: %v\n%s", g, a, r, stack[:n])
			if d.metrics != nil {
				d.metrics.RecordPanic()
			}
		}
	}()
	d.performEdit(effect)
}

// performEdit hands the effect to the controller. Without a controller
// the effect still runs so context-only effects (shift, switchType)
// work before the host attaches a surface.
func (d *Dispatcher) performEdit(effect surface.Effect) {
	if d.controller != nil {
		d.controller.PerformEdit(effect)
		return
	}
	effect(nil)
}

func (d *Dispatcher) tryEndSentence(g gesture.Gesture, a action.Action) {
	if d.behavior == nil || !d.behavior.ShouldEndSentence(g, a) {
		return
	}
	if p := d.proxy(); p != nil {
		p.EndSentence(d.behavior.EndSentenceText())
	}
}

func (d *Dispatcher) trySwitchMode(g gesture.Gesture, a action.Action) {
	if d.behavior == nil {
		return
	}
	if mode, ok := d.behavior.ShouldSwitchMode(g, a); ok {
		d.context.SetMode(mode)
	}
}

func (d *Dispatcher) proxy() surface.Proxy {
	if d.controller == nil {
		return nil
	}
	return d.controller.Proxy()
}

func (d *Dispatcher) beforeCursor() string {
	if p := d.proxy(); p != nil {
		return p.DocumentContextBeforeCursor()
	}
	return ""
}
