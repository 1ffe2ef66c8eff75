package replacement

import "fmt"

// Substitutions is a fixed rune-to-rune replacement table. A hit is
// replayed through the dispatcher once, so chains (a maps to b, b maps
// to c) apply a single hop per keystroke; cycles are rejected outright.
type Substitutions map[rune]rune

// Validate rejects self-mapping entries and cyclic chains.
func (s Substitutions) Validate() error {
	for from, to := range s {
		if from == to {
			return fmt.Errorf("%w: %q", ErrSelfMapping, from)
		}
	}
	for start := range s {
		seen := map[rune]bool{start: true}
		cur := start
		for {
			next, ok := s[cur]
			if !ok {
				break
			}
			if seen[next] {
				return fmt.Errorf("%w: starting at %q", ErrCycle, start)
			}
			seen[next] = true
			cur = next
		}
	}
	return nil
}
