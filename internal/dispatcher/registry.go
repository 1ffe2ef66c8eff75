package dispatcher

import (
	"sort"

	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/gesture"
	"github.com/dshills/keytap/internal/keyboard"
	"github.com/dshills/keytap/internal/surface"
)

// Resolver produces the effect for a concrete action under the current
// context. Returning nil leaves the gesture without an effect.
type Resolver func(a action.Action, ctx *keyboard.Context) surface.Effect

// bindingKey addresses one override slot.
type bindingKey struct {
	gesture gesture.Gesture
	kind    action.Kind
}

// Registry resolves (gesture, action) pairs to effects. Host overrides
// registered per (gesture, action kind) take precedence over the
// standard bindings; an override answering nil explicitly unbinds the
// pair. Registration happens at setup time, before dispatching starts,
// so lookups take no locks.
type Registry struct {
	overrides map[bindingKey]Resolver
}

// NewRegistry creates a registry with the standard bindings only.
func NewRegistry() *Registry {
	return &Registry{
		overrides: make(map[bindingKey]Resolver),
	}
}

// Override installs a resolver for every action of the given kind under
// the given gesture.
func (r *Registry) Override(g gesture.Gesture, kind action.Kind, fn Resolver) {
	r.overrides[bindingKey{gesture: g, kind: kind}] = fn
}

// ClearOverride removes an installed override, restoring the standard
// binding.
func (r *Registry) ClearOverride(g gesture.Gesture, kind action.Kind) {
	delete(r.overrides, bindingKey{gesture: g, kind: kind})
}

// Resolve returns the effect bound to the pair, or nil.
func (r *Registry) Resolve(g gesture.Gesture, a action.Action, ctx *keyboard.Context) surface.Effect {
	if fn, ok := r.overrides[bindingKey{gesture: g, kind: a.Kind}]; ok {
		return fn(a, ctx)
	}
	return standardEffect(g, a, ctx)
}

// Overrides lists the overridden slots in a stable order.
func (r *Registry) Overrides() []string {
	slots := make([]string, 0, len(r.overrides))
	for key := range r.overrides {
		slots = append(slots, key.gesture.String()+"/"+key.kind.String())
	}
	sort.Strings(slots)
	return slots
}

// Count returns the number of installed overrides.
func (r *Registry) Count() int {
	return len(r.overrides)
}
