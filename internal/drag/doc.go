// Package drag converts continuous pointer displacement on the space key
// into discrete input-cursor steps.
//
// Translation is anchor-relative: the step count is always recomputed
// from the fixed anchor the dispatcher pinned when the drag began, so
// identical (anchor, current) pairs always yield identical counts and no
// movement accumulates from repeated calls. SpaceHandler tracks the steps
// already applied during the active drag and reports only the delta still
// owed to the editing surface.
package drag
