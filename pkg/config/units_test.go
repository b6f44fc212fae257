package config

import (
	"math"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"50ms", 50 * time.Millisecond, false},
		{"10s", 10 * time.Second, false},
		{"1m30s", 90 * time.Second, false},
		{"", 0, false},
		{"1d", 0, true},
		{"-50ms", 0, true},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDuration(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"100m", 100, false},
		{"1.5km", 1500, false},
		{"500", 500, false},
		{"", 0, true},
		{"1000ft", 0, true},
		{"10x", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDistance(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDistance(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("ParseDistance(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestYAMLUnits(t *testing.T) {
	type testConfig struct {
		Time   Duration `yaml:"time"`
		Millis Duration `yaml:"millis"`
		Dist   Distance `yaml:"dist"`
		Plain  Distance `yaml:"plain"`
	}

	yamlData := `
time: 250ms
millis: 40
dist: 80km
plain: 250
`
	var cfg testConfig
	if err := yaml.Unmarshal([]byte(yamlData), &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if time.Duration(cfg.Time) != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", time.Duration(cfg.Time))
	}
	if time.Duration(cfg.Millis) != 40*time.Millisecond {
		t.Errorf("Expected bare number as 40ms, got %v", time.Duration(cfg.Millis))
	}
	if cfg.Dist.Meters() != 80000 {
		t.Errorf("Expected 80000m, got %v", cfg.Dist)
	}
	if cfg.Plain.Meters() != 250 {
		t.Errorf("Expected 250m, got %v", cfg.Plain)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back testConfig
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", back, cfg)
	}
}
