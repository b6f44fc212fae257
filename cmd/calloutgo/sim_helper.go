package main

import (
	"fmt"
	"log/slog"

	"calloutgo/pkg/config"
	"calloutgo/pkg/sim"
	"calloutgo/pkg/sim/mocksim"
)

func initializeSimClient(cfg *config.Config) (sim.Client, error) {
	switch cfg.Sim.Provider {
	case "", "mock":
		mc := mocksim.FromConfig(&cfg.Sim.Mock)
		slog.Info("Sim Source: Mock", "vessel", mc.VesselID, "apoapsis", mc.Apoapsis, "splashdown", mc.Splashdown)
		return mocksim.NewClient(mc), nil
	default:
		return nil, fmt.Errorf("unknown sim provider %q", cfg.Sim.Provider)
	}
}
