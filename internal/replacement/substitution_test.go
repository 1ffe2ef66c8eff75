package replacement

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestSubstitutionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Substitutions
		wantErr error
	}{
		{"empty", Substitutions{}, nil},
		{"simple", Substitutions{'-': '–'}, nil},
		{"chain", Substitutions{'a': 'b', 'b': 'c'}, nil},
		{"self mapping", Substitutions{'a': 'a'}, ErrSelfMapping},
		{"two cycle", Substitutions{'a': 'b', 'b': 'a'}, ErrCycle},
		{"three cycle", Substitutions{'a': 'b', 'b': 'c', 'c': 'a'}, ErrCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRefusesInvalidTables(t *testing.T) {
	_, err := New(DefaultQuotations(), map[language.Tag]Substitutions{
		language.English: {'a': 'a'},
	})
	if !errors.Is(err, ErrSelfMapping) {
		t.Errorf("New() error = %v, want %v", err, ErrSelfMapping)
	}
}
