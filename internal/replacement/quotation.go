package replacement

import (
	"strings"

	"golang.org/x/text/language"
)

// Quotation holds the glyphs a locale prefers for typed straight quotes.
type Quotation struct {
	DoubleOpen  rune
	DoubleClose rune
	SingleOpen  rune
	SingleClose rune

	// Apostrophe replaces a single quote typed right after a word
	// character.
	Apostrophe rune
}

// rootQuotation is the CLDR root fallback for locales without an entry.
var rootQuotation = Quotation{
	DoubleOpen:  '“',
	DoubleClose: '”',
	SingleOpen:  '‘',
	SingleClose: '’',
	Apostrophe:  '’',
}

// DefaultQuotations returns the built-in per-locale quotation
// preferences, keyed by base language. Callers may add or override
// entries before handing the map to New.
func DefaultQuotations() map[language.Tag]Quotation {
	return map[language.Tag]Quotation{
		language.English:    {'“', '”', '‘', '’', '’'},
		language.German:     {'„', '“', '‚', '‘', '’'},
		language.French:     {'«', '»', '‹', '›', '’'},
		language.Italian:    {'«', '»', '“', '”', '’'},
		language.Spanish:    {'«', '»', '“', '”', '’'},
		language.Portuguese: {'“', '”', '‘', '’', '’'},
		language.Russian:    {'«', '»', '„', '“', '’'},
		language.Polish:     {'„', '”', '«', '»', '’'},
		language.Swedish:    {'”', '”', '’', '’', '’'},
		language.Finnish:    {'”', '”', '’', '’', '’'},
		language.Norwegian:  {'«', '»', '‘', '’', '’'},
	}
}

// hasUnclosedQuotation reports whether the text contains an opening
// delimiter with no closing delimiter after it.
func hasUnclosedQuotation(text string, open, close rune) bool {
	lastOpen := strings.LastIndex(text, string(open))
	if lastOpen < 0 {
		return false
	}
	return strings.LastIndex(text, string(close)) <= lastOpen
}
