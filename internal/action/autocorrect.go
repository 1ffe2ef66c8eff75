package action

// ShouldApplyAutocorrect reports whether releasing the action should
// commit a pending autocorrect suggestion before its own effect runs.
// Spaces, newlines, and word-delimiter characters qualify.
func (a Action) ShouldApplyAutocorrect() bool {
	switch a.Kind {
	case KindSpace, KindNewline:
		return true
	case KindCharacter:
		return a.IsWordDelimiter()
	default:
		return false
	}
}

// ShouldRemoveAutoInsertedSpace reports whether the action should pull
// back the space the autocomplete coordinator inserted before typing
// itself. Only non-space delimiter characters qualify: typing "," after
// "word " must yield "word, ", not "word ,".
func (a Action) ShouldRemoveAutoInsertedSpace() bool {
	return a.Kind == KindCharacter && a.IsWordDelimiter() && a.Char != ' '
}

// ShouldReinsertAutoRemovedSpace reports whether the action should
// restore an auto-inserted space it pulled back before executing.
func (a Action) ShouldReinsertAutoRemovedSpace() bool {
	return a.ShouldRemoveAutoInsertedSpace()
}
