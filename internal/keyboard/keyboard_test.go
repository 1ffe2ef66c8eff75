package keyboard

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name    string
		want    Type
		wantErr bool
	}{
		{"alphabetic", TypeAlphabetic, false},
		{"numeric", TypeNumeric, false},
		{"symbolic", TypeSymbolic, false},
		{"emojis", TypeEmojis, false},
		{"qwerty", TypeAlphabetic, true},
		{"", TypeAlphabetic, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseType(%q) error = %v, wantErr = %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTypeStringRoundTrip(t *testing.T) {
	for _, typ := range []Type{TypeAlphabetic, TypeNumeric, TypeSymbolic, TypeEmojis} {
		parsed, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q) returned error: %v", typ.String(), err)
		}
		if parsed != typ {
			t.Errorf("ParseType(%q) = %v, want %v", typ.String(), parsed, typ)
		}
	}
}

func TestCasingIsUppercased(t *testing.T) {
	tests := []struct {
		casing Casing
		want   bool
	}{
		{CasingLowercased, false},
		{CasingUppercased, true},
		{CasingCapsLocked, true},
	}

	for _, tt := range tests {
		if got := tt.casing.IsUppercased(); got != tt.want {
			t.Errorf("%v.IsUppercased() = %v, want %v", tt.casing, got, tt.want)
		}
	}
}

func TestParseCasing(t *testing.T) {
	for _, c := range []Casing{CasingLowercased, CasingUppercased, CasingCapsLocked} {
		parsed, err := ParseCasing(c.String())
		if err != nil {
			t.Fatalf("ParseCasing(%q) returned error: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseCasing(%q) = %v, want %v", c.String(), parsed, c)
		}
	}

	if _, err := ParseCasing("shouty"); err == nil {
		t.Error("ParseCasing(\"shouty\") should return an error")
	}
}

func TestParseSpaceLongPressBehavior(t *testing.T) {
	for _, b := range []SpaceLongPressBehavior{SpaceDoesNothing, SpaceOpensLocaleMenu, SpaceMovesInputCursor} {
		parsed, err := ParseSpaceLongPressBehavior(b.String())
		if err != nil {
			t.Fatalf("ParseSpaceLongPressBehavior(%q) returned error: %v", b.String(), err)
		}
		if parsed != b {
			t.Errorf("ParseSpaceLongPressBehavior(%q) = %v, want %v", b.String(), parsed, b)
		}
	}

	if _, err := ParseSpaceLongPressBehavior("sideways"); err == nil {
		t.Error("ParseSpaceLongPressBehavior(\"sideways\") should return an error")
	}
}

func TestContextMode(t *testing.T) {
	ctx := NewContext()
	ctx.SetMode(Mode{Type: TypeNumeric, Casing: CasingUppercased})

	if ctx.Type != TypeNumeric {
		t.Errorf("Type = %v, want %v", ctx.Type, TypeNumeric)
	}
	if ctx.Casing != CasingUppercased {
		t.Errorf("Casing = %v, want %v", ctx.Casing, CasingUppercased)
	}
	if got := ctx.Mode(); got != (Mode{Type: TypeNumeric, Casing: CasingUppercased}) {
		t.Errorf("Mode() = %v", got)
	}
}

func TestSelectNextLocale(t *testing.T) {
	en := language.MustParse("en")
	de := language.MustParse("de")
	sv := language.MustParse("sv")

	tests := []struct {
		name    string
		locales []language.Tag
		current language.Tag
		want    language.Tag
	}{
		{"advances", []language.Tag{en, de, sv}, en, de},
		{"wraps", []language.Tag{en, de, sv}, sv, en},
		{"not in list selects first", []language.Tag{en, de}, sv, en},
		{"single entry stays", []language.Tag{en}, en, en},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext()
			ctx.Locales = tt.locales
			ctx.Locale = tt.current
			ctx.SelectNextLocale()
			if ctx.Locale != tt.want {
				t.Errorf("Locale = %v, want %v", ctx.Locale, tt.want)
			}
		})
	}
}

func TestSelectNextLocaleEmptyList(t *testing.T) {
	ctx := NewContext()
	ctx.Locales = nil
	before := ctx.Locale
	ctx.SelectNextLocale()
	if ctx.Locale != before {
		t.Errorf("Locale changed with empty list: %v", ctx.Locale)
	}
}
