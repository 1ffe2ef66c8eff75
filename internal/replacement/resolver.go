package replacement

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/gesture"
)

// Resolver answers whether a released character should be replaced by a
// locale-preferred one. Resolution is pure over (gesture, action,
// locale, text before cursor).
type Resolver struct {
	quotations map[language.Tag]Quotation
	quotTags   []language.Tag
	quotMatch  language.Matcher

	subs     map[language.Tag]Substitutions
	subTags  []language.Tag
	subMatch language.Matcher
}

// New builds a resolver over the given quotation preferences and
// substitution tables. Substitution tables are validated; an invalid
// table refuses construction.
func New(quotations map[language.Tag]Quotation, subs map[language.Tag]Substitutions) (*Resolver, error) {
	for tag, table := range subs {
		if err := table.Validate(); err != nil {
			return nil, fmt.Errorf("replacement: table %v: %w", tag, err)
		}
	}

	r := &Resolver{quotations: quotations, subs: subs}
	r.quotTags, r.quotMatch = newMatcher(quotations)
	r.subTags, r.subMatch = newMatcher(subs)
	return r, nil
}

// NewDefault builds a resolver with the built-in quotation preferences
// and no substitution tables.
func NewDefault() *Resolver {
	r, _ := New(DefaultQuotations(), nil)
	return r
}

// newMatcher builds a deterministic matcher over the table keys. Keys
// are sorted so tie-breaking does not depend on map order.
func newMatcher[V any](table map[language.Tag]V) ([]language.Tag, language.Matcher) {
	if len(table) == 0 {
		return nil, nil
	}
	tags := make([]language.Tag, 0, len(table))
	for tag := range table {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	return tags, language.NewMatcher(tags)
}

// QuotationFor returns the quotation preferences the locale resolves to,
// falling back to the CLDR root glyphs.
func (r *Resolver) QuotationFor(locale language.Tag) Quotation {
	if r.quotMatch != nil {
		if _, idx, conf := r.quotMatch.Match(locale); conf > language.No {
			return r.quotations[r.quotTags[idx]]
		}
	}
	return rootQuotation
}

// substitutionsFor returns the substitution table the locale resolves
// to, or nil.
func (r *Resolver) substitutionsFor(locale language.Tag) Substitutions {
	if r.subMatch == nil {
		return nil
	}
	if _, idx, conf := r.subMatch.Match(locale); conf > language.No {
		return r.subs[r.subTags[idx]]
	}
	return nil
}

// Resolve returns the replacement action for a released character, or
// false when the character stands as typed. Only release gestures on
// character actions participate.
func (r *Resolver) Resolve(g gesture.Gesture, a action.Action, locale language.Tag, before string) (action.Action, bool) {
	if g != gesture.Release || a.Kind != action.KindCharacter {
		return action.None, false
	}

	q := r.QuotationFor(locale)

	switch a.Char {
	case '"', q.DoubleOpen:
		preferred := q.DoubleOpen
		if hasUnclosedQuotation(before, q.DoubleOpen, q.DoubleClose) {
			preferred = q.DoubleClose
		}
		if preferred != a.Char && preferred != 0 {
			return action.Character(preferred), true
		}
		return action.None, false

	case '\'', q.SingleOpen:
		preferred := q.SingleOpen
		if endsWithWordRune(before) {
			preferred = q.Apostrophe
		} else if hasUnclosedQuotation(before, q.SingleOpen, q.SingleClose) {
			preferred = q.SingleClose
		}
		if preferred != a.Char && preferred != 0 {
			return action.Character(preferred), true
		}
		return action.None, false
	}

	if table := r.substitutionsFor(locale); table != nil {
		if to, ok := table[a.Char]; ok {
			return action.Character(to), true
		}
	}
	return action.None, false
}

// endsWithWordRune reports whether the text ends in a letter or digit,
// the position where a single quote reads as an apostrophe.
func endsWithWordRune(text string) bool {
	r, size := utf8.DecodeLastRuneInString(text)
	if size == 0 {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
