package dispatcher

import "github.com/dshills/keytap/internal/drag"

// dragSession is the transient space-drag state. At most one session
// exists; a space press clears it and only a space longPress arms it.
type dragSession struct {
	armed     bool
	anchorSet bool
	anchor    drag.Point
}

func (s *dragSession) clear() {
	*s = dragSession{}
}

func (s *dragSession) arm() {
	s.armed = true
	s.anchorSet = false
}
