package autocomplete

// Suggestion is one candidate replacement for the word under the cursor.
type Suggestion struct {
	// Text replaces the composing word when the suggestion is applied.
	Text string

	// IsAutocorrect marks the suggestion as eligible for silent
	// auto-application before a word delimiter.
	IsAutocorrect bool
}

// Provider is the suggestion engine capability. Implementations return
// suggestions ordered by relevance for the current text context.
type Provider interface {
	Suggestions() []Suggestion
}

// FirstAutocorrect returns the first autocorrect-flagged suggestion the
// provider offers.
func FirstAutocorrect(p Provider) (Suggestion, bool) {
	if p == nil {
		return Suggestion{}, false
	}
	for _, s := range p.Suggestions() {
		if s.IsAutocorrect {
			return s, true
		}
	}
	return Suggestion{}, false
}
