// Package replacement resolves a released character action into the
// locale-preferred glyph before it reaches the editing surface.
//
// Two sources feed the resolution: per-locale quotation preferences
// (curly quotes, guillemets, apostrophes) and fixed per-locale
// substitution tables. Locale lookup runs through a language matcher so
// regional variants inherit their parent's entry (de-AT resolves the de
// table). A resolved replacement is replayed through the dispatcher
// exactly once; the substitution validator rejects the cyclic tables
// that could otherwise chain forever.
package replacement
