package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"calloutgo/pkg/audio"
	"calloutgo/pkg/config"
	"calloutgo/pkg/cue"
	"calloutgo/pkg/watcher"
)

var cuesOpts struct {
	check bool
}

var cuesCmd = &cobra.Command{
	Use:   "cues",
	Short: "List the cues the sound directory can serve",
	Long: `Lists every cue found under sounds.dir.

With --check, also reports the cues the watcher can raise under the current
config that have no sound file, and exits non-zero if any are missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return listCues(cmd.OutOrStdout(), cfg, cuesOpts.check)
	},
}

func init() {
	rootCmd.AddCommand(cuesCmd)
	cuesCmd.Flags().BoolVar(&cuesOpts.check, "check", false, "Report watcher cues without a sound file")
}

func listCues(w io.Writer, cfg *config.Config, check bool) error {
	lib := audio.NewLibrary(cfg.Sounds.Dir, cfg.Sounds.SampleRate)

	ids, err := lib.IDs()
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", cfg.Sounds.Dir, err)
	}
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
	if !check {
		return nil
	}

	missing := missingCues(lib, cfg)
	if len(missing) == 0 {
		fmt.Fprintf(w, "All %d cues present\n", len(ids))
		return nil
	}
	for _, id := range missing {
		fmt.Fprintf(w, "MISSING %s\n", id)
	}
	return fmt.Errorf("%d cues have no sound in %s", len(missing), cfg.Sounds.Dir)
}

func missingCues(lib *audio.Library, cfg *config.Config) []cue.ID {
	w := watcher.New(watcher.Options{
		GForce:      cfg.Watcher.GForce,
		GearWarning: cfg.Watcher.GearWarning,
	})

	var missing []cue.ID
	for _, id := range append([]cue.ID{cue.Welcome}, w.Cues()...) {
		if !lib.Exists(id) {
			missing = append(missing, id)
		}
	}
	return missing
}
