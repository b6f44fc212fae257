package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"calloutgo/pkg/audio"
	"calloutgo/pkg/config"
	"calloutgo/pkg/core"
	"calloutgo/pkg/cue"
	"calloutgo/pkg/logging"
	"calloutgo/pkg/playback"
	"calloutgo/pkg/sim"
	"calloutgo/pkg/version"
	"calloutgo/pkg/watcher"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Attach to the telemetry source and play callouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, globalOpts.configPath)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func run(ctx context.Context, configPath string) error {
	appCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&appCfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("calloutgo Started", "version", version.Version, "config", configPath)

	simClient, err := initializeSimClient(appCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize sim client: %w", err)
	}
	defer simClient.Close()

	eng, err := newEngine(ctx, appCfg, simClient)
	if err != nil {
		return err
	}
	defer eng.Close()

	eng.loop.Run(ctx)

	st := eng.player.Stats()
	slog.Info("calloutgo Stopped",
		"requested", st.Requested,
		"played", st.Played,
		"not_found", st.NotFound,
		"dropped", st.Dropped,
	)
	return nil
}

// engine is everything between the telemetry source and the speaker.
type engine struct {
	library    *audio.Library
	prefetcher *audio.Prefetcher
	speaker    *audio.Speaker
	player     *playback.Player
	watcher    *watcher.Watcher
	machine    *core.Machine
	loop       *core.Loop
}

func newEngine(ctx context.Context, cfg *config.Config, client sim.Client) (*engine, error) {
	overflow, err := playback.ParseOverflow(cfg.Playback.Overflow)
	if err != nil {
		return nil, err
	}
	splash, err := watcher.ParseSplashReset(cfg.Watcher.SplashReset)
	if err != nil {
		return nil, err
	}

	e := &engine{
		library: audio.NewLibrary(cfg.Sounds.Dir, cfg.Sounds.SampleRate),
		speaker: audio.NewSpeaker(&cfg.Playback, cfg.Sounds.SampleRate),
		watcher: watcher.New(watcher.Options{
			GForce:              cfg.Watcher.GForce,
			GearWarning:         cfg.Watcher.GearWarning,
			SplashReset:         splash,
			LandingSpeedSquared: cfg.Watcher.LandingSpeedSquared,
			RearmBrakeWarning:   cfg.Watcher.RearmBrakeWarning,
		}),
	}

	var res playback.Resolver = e.library
	if cfg.Sounds.Prefetch {
		e.prefetcher = audio.NewPrefetcher(ctx, e.library)
		e.prefetcher.Warm(append(e.watcher.Cues(), cue.Welcome)...)
		res = e.prefetcher
	}

	slog.Info("Sounds: Library ready", "dir", cfg.Sounds.Dir, "sample_rate", cfg.Sounds.SampleRate, "prefetch", cfg.Sounds.Prefetch)
	slog.Info("Speaker: Ready", "volume", e.speaker.Volume(), "headset", cfg.Playback.AudioEffects.Headset)

	e.player = playback.NewPlayer(res, e.speaker, playback.Options{
		Capacity: cfg.Playback.QueueCapacity,
		Overflow: overflow,
	})
	e.machine = core.NewMachine(e.watcher, e.player)
	e.loop = core.NewLoop(time.Duration(cfg.Ticker.Interval), client, e.machine)
	return e, nil
}

// Close stops background decoding and releases the audio device.
func (e *engine) Close() {
	if e.prefetcher != nil {
		e.prefetcher.Close()
	}
	e.speaker.Shutdown()
}
