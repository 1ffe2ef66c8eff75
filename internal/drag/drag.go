package drag

import log "github.com/sirupsen/logrus"

// DefaultSensitivity is the default horizontal distance in points that
// moves the input cursor by one character. It is a policy value, not a
// behavioral requirement; hosts tune it through the dispatcher config.
const DefaultSensitivity = 8.0

// Point is a location in the host's pointer coordinate space.
type Point struct {
	X float64
	Y float64
}

// Steps converts the signed horizontal displacement between anchor and
// current into a signed count of cursor-move steps, truncated toward
// zero. A non-positive sensitivity yields no steps.
func Steps(anchor, current Point, sensitivity float64) int {
	if sensitivity <= 0 {
		return 0
	}
	return int((current.X - anchor.X) / sensitivity)
}

// SpaceHandler translates one space-key drag at a time. It is stateless
// beyond the applied-step offset of the active drag; the anchor itself
// is held by the caller.
type SpaceHandler struct {
	sensitivity float64
	applied     int
}

// NewSpaceHandler creates a handler with the given points-per-step
// sensitivity. Non-positive values fall back to DefaultSensitivity.
func NewSpaceHandler(sensitivity float64) *SpaceHandler {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &SpaceHandler{sensitivity: sensitivity}
}

// Sensitivity returns the points-per-step sensitivity.
func (h *SpaceHandler) Sensitivity() float64 {
	return h.sensitivity
}

// Begin starts a new drag from the given anchor, forgetting any steps
// applied during a previous drag.
func (h *SpaceHandler) Begin(anchor Point) {
	h.applied = 0
	log.WithField("anchor", anchor).Debug("drag: space drag started")
}

// Move recomputes the total step count for the displacement between
// anchor and current and returns the portion not yet applied. A repeated
// call with the same points returns 0.
func (h *SpaceHandler) Move(anchor, current Point) int {
	total := Steps(anchor, current, h.sensitivity)
	delta := total - h.applied
	h.applied = total
	return delta
}
