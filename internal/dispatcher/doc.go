// Package dispatcher turns (gesture, action) pairs from the host key
// views into editing-surface effects and the bookkeeping around them.
//
// Handle runs a fixed pipeline: replacement resolution (replayed at most
// once), feedback gating, space-drag session bookkeeping, effect
// resolution, pre-edit auto-space removal and autocorrect, the effect
// itself, post-edit auto-space reinsertion, sentence ending, mode
// switching, and finally the autocomplete and text-context refresh.
// An action with no effect for the gesture stops the pipeline before
// any edit.
//
// The dispatcher is single-threaded by contract: all gesture handling
// runs on the host input thread, so the dispatch path takes no locks.
// Metrics carry their own mutex and may be read from elsewhere.
//
// Hosts implementing the space cursor drag feed pointer updates through
// HandleDrag between the arming longPress and the next press. While the
// drag session is armed, a space release resolves to no effect, so
// lifting the finger after a long press never types a space.
package dispatcher
