package cue

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"alt/100", false},
		{"alert/welcomeback", false},
		{"gforce/6", false},
		{"alt/radio_alt-2", false},
		{"", true},
		{"alt", true},
		{"/100", true},
		{"alt/", true},
		{"alt/100/extra", true},
		{"Alt/100", true},
		{"alt/1 00", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalid", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if string(id) != tt.in {
				t.Errorf("Parse(%q) = %q", tt.in, id)
			}
		})
	}
}

func TestID_Parts(t *testing.T) {
	id := New(CategoryAlt, "500")
	if id != "alt/500" {
		t.Fatalf("New = %q", id)
	}
	if id.Category() != "alt" || id.Label() != "500" {
		t.Errorf("got category %q label %q", id.Category(), id.Label())
	}
	if Touch.Category() != CategoryAlert {
		t.Errorf("Touch category = %q", Touch.Category())
	}
}
