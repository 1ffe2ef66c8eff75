// Package gesture defines the discrete input gestures the host's input
// layer produces on keyboard actions.
//
// Gestures are immutable, stateless values. The dispatcher pairs one
// gesture with one keyboard action per input event; no gesture carries
// position or timing information.
package gesture
