// Package keyboard holds the session-lifetime keyboard state.
//
// The central type is Context: locale selection, the current keyboard
// mode (type plus casing), the fresh-word-boundary flag synced from the
// editing surface, the pending auto-inserted-space marker, and the
// configured space long-press preference. The context is owned by the
// hosting session, passed explicitly at construction, and mutated only
// from the synchronous input path.
package keyboard
