package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Ticker   TickerConfig   `yaml:"ticker"`
	Sim      SimConfig      `yaml:"sim"`
	Sounds   SoundsConfig   `yaml:"sounds"`
	Playback PlaybackConfig `yaml:"playback"`
	Watcher  WatcherConfig  `yaml:"watcher"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
	Trace bool   `yaml:"trace"` // log every snapshot at DEBUG
}

// TickerConfig holds the host loop timing.
type TickerConfig struct {
	Interval Duration `yaml:"interval"`
}

// SimConfig holds settings for the telemetry source.
type SimConfig struct {
	Provider string        `yaml:"provider"` // "mock"
	Mock     MockSimConfig `yaml:"mock"`
}

// MockSimConfig shapes the scripted mock flight.
type MockSimConfig struct {
	VesselID       string   `yaml:"vessel_id"`
	PrelaunchTicks int      `yaml:"prelaunch_ticks"`
	ClimbRate      float64  `yaml:"climb_rate"`   // m per tick
	Apoapsis       Distance `yaml:"apoapsis"`     // top of climb
	OrbitTicks     int      `yaml:"orbit_ticks"`  // ticks spent ORBITING
	DescentRate    float64  `yaml:"descent_rate"` // m per tick
	TerrainHeight  Distance `yaml:"terrain_height"`
	TouchdownSpeed float64  `yaml:"touchdown_speed"` // m/s at touchdown
	RolloutDecel   float64  `yaml:"rollout_decel"`   // m/s lost per tick on the ground
	Splashdown     bool     `yaml:"splashdown"`
}

// SoundsConfig locates the cue sound files.
type SoundsConfig struct {
	Dir        string `yaml:"dir"`
	SampleRate int    `yaml:"sample_rate"`
	Prefetch   bool   `yaml:"prefetch"` // decode in the background instead of on the tick
}

// AudioEffectsConfig holds settings for output filtering.
type AudioEffectsConfig struct {
	Headset    bool    `yaml:"headset"`
	LowCutoff  float64 `yaml:"low_cutoff"`
	HighCutoff float64 `yaml:"high_cutoff"`
}

// PlaybackConfig holds settings for the alert player and speaker.
type PlaybackConfig struct {
	QueueCapacity int                `yaml:"queue_capacity"`
	Overflow      string             `yaml:"overflow"` // "drop_newest", "drop_oldest"
	Volume        float64            `yaml:"volume"`
	AudioEffects  AudioEffectsConfig `yaml:"audio_effects"`
}

// WatcherConfig toggles the optional telemetry rules.
type WatcherConfig struct {
	GForce              bool    `yaml:"gforce"`
	GearWarning         bool    `yaml:"gear_warning"`
	SplashReset         string  `yaml:"splash_reset"` // "never", "on_exit", "on_launch"
	LandingSpeedSquared float64 `yaml:"landing_speed_squared"`
	RearmBrakeWarning   bool    `yaml:"rearm_brake_warning"` // warn again on every flight
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Path:  "./logs/calloutgo.log",
			Level: "INFO",
		},
		Ticker: TickerConfig{
			Interval: Duration(50 * time.Millisecond),
		},
		Sim: SimConfig{
			Provider: "mock",
			Mock: MockSimConfig{
				VesselID:       "mock-1",
				PrelaunchTicks: 40,
				ClimbRate:      25,
				Apoapsis:       Distance(4000),
				OrbitTicks:     60,
				DescentRate:    8,
				TerrainHeight:  Distance(0),
				TouchdownSpeed: 9,
				RolloutDecel:   0.25,
			},
		},
		Sounds: SoundsConfig{
			Dir:        "./sounds",
			SampleRate: 44100,
			Prefetch:   true,
		},
		Playback: PlaybackConfig{
			QueueCapacity: 16,
			Overflow:      "drop_newest",
			Volume:        1.0,
			AudioEffects: AudioEffectsConfig{
				Headset:    false,
				LowCutoff:  400,
				HighCutoff: 3500,
			},
		},
		Watcher: WatcherConfig{
			SplashReset:         "never",
			LandingSpeedSquared: 20,
		},
	}
}

// Validate checks values that would otherwise fail deep inside the engine.
func (c *Config) Validate() error {
	switch c.Playback.Overflow {
	case "", "drop_newest", "drop_oldest":
	default:
		return fmt.Errorf("invalid playback.overflow %q: must be drop_newest or drop_oldest", c.Playback.Overflow)
	}
	switch c.Watcher.SplashReset {
	case "", "never", "on_exit", "on_launch":
	default:
		return fmt.Errorf("invalid watcher.splash_reset %q: must be never, on_exit or on_launch", c.Watcher.SplashReset)
	}
	if c.Playback.QueueCapacity < 1 {
		return fmt.Errorf("invalid playback.queue_capacity %d: must be at least 1", c.Playback.QueueCapacity)
	}
	if c.Playback.Volume < 0 || c.Playback.Volume > 1 {
		return fmt.Errorf("invalid playback.volume %v: must be within [0, 1]", c.Playback.Volume)
	}
	if c.Sounds.SampleRate <= 0 {
		return fmt.Errorf("invalid sounds.sample_rate %d", c.Sounds.SampleRate)
	}
	return nil
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, it is merged over the defaults but NOT saved back, to preserve user formatting and comments.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}

	// Env fallback and expansion (never written back to disk)
	if cfg.Sounds.Dir == "" {
		cfg.Sounds.Dir = os.Getenv("CALLOUTGO_SOUND_DIR")
	}
	cfg.Sounds.Dir = os.ExpandEnv(cfg.Sounds.Dir)
	cfg.Log.Path = os.ExpandEnv(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# calloutgo Configuration
# ----------------------
# Supported Units:
#   Duration: ms, s (a bare number is milliseconds)
#   Distance: m (meters), km (kilometers)

`)
	data = append(header, data...)

	reOverflow := regexp.MustCompile(`(?m)^(\s+)overflow:`)
	data = reOverflow.ReplaceAll(data, []byte("${1}# Options: drop_newest, drop_oldest\n${1}overflow:"))

	reSplash := regexp.MustCompile(`(?m)^(\s+)splash_reset:`)
	data = reSplash.ReplaceAll(data, []byte("${1}# Options: never, on_exit, on_launch\n${1}splash_reset:"))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return Save(path, DefaultConfig())
}
