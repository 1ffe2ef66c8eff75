// Package behavior answers the dispatcher's policy questions: should the
// sentence be terminated after this gesture, and which keyboard mode
// should the context prefer next.
//
// The dispatcher treats the oracle as opaque. Standard implements the
// classic typing policy (double-space sentence ending, shift downshift,
// sentence auto-capitalization); Lua delegates the same questions to a
// host-provided script.
package behavior
