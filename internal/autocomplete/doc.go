// Package autocomplete coordinates the externally supplied suggestion
// engine with edits around the input cursor.
//
// The engine itself is a consumed capability: a Provider yields ordered
// suggestions, some flagged as autocorrect quality. The Coordinator owns
// the delicate part, applying a suggestion over the composing word and
// tracking the single space it may auto-insert afterwards.
// Every coordinator operation is safe to call unconditionally; outside
// its precondition it is a no-op, so the dispatcher needs no branching
// beyond its own policy gates.
package autocomplete
