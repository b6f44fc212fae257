package watcher

import (
	"testing"

	"calloutgo/pkg/cue"
)

func TestDescending(t *testing.T) {
	tests := []struct {
		name   string
		prev   float64
		curr   float64
		want   cue.ID
		wantOK bool
	}{
		{"150 to 95 calls 100", 150, 95, "alt/100", true},
		{"25 to 5 calls only 10", 25, 5, "alt/10", true},
		{"exactly on threshold", 101, 100, "alt/100", true},
		{"prev on threshold does not repeat", 100, 90, "", false},
		{"climbing", 90, 150, "", false},
		{"level", 400, 400, "", false},
		{"3000 is radio alt", 3200, 2900, cue.RadioAlt, true},
		{"fast descent smallest wins", 5000, 15, "alt/20", true},
		{"above ladder", 9000, 8000, "", false},
		{"from zero", 0, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Descending(AltitudeLadder, tt.prev, tt.curr)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if r.Cue != tt.want {
				t.Errorf("cue = %q, want %q", r.Cue, tt.want)
			}
		})
	}
}

func TestAscending_GForce(t *testing.T) {
	tests := []struct {
		name   string
		prev   float64
		curr   float64
		want   cue.ID
		wantOK bool
	}{
		{"1 to 3.5", 1, 3.5, "gforce/3", true},
		{"1 to 7 calls highest", 1, 7, "gforce/6", true},
		{"4.2 to 5", 4.2, 5, "gforce/5", true},
		{"sustained", 5, 5.5, "", false},
		{"dropping", 6, 2, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Ascending(GForceLadder, tt.prev, tt.curr)
			if ok != tt.wantOK || r.Cue != tt.want {
				t.Errorf("got (%q, %v), want (%q, %v)", r.Cue, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLadder(t *testing.T) {
	rungs := Ladder("alt", 1.5, 10)
	if len(rungs) != 2 {
		t.Fatalf("len = %d", len(rungs))
	}
	if rungs[0].Cue != "alt/1.5" || rungs[1].Cue != "alt/10" {
		t.Errorf("unexpected cues: %v", rungs)
	}
}

func TestAltitudeLadder_Ascending(t *testing.T) {
	for i := 1; i < len(AltitudeLadder); i++ {
		if AltitudeLadder[i].Threshold <= AltitudeLadder[i-1].Threshold {
			t.Fatalf("ladder not ascending at %d", i)
		}
	}
}
