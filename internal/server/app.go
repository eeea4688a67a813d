package server

import (
	"log"
	"time"

	"CitadelCommand/internal/game"
)

type AppConfig struct {
	Seed      int64
	Overrides TuningOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{}
}

// StartApp builds the hub from the (possibly overridden) tuning and blocks
// serving HTTP. A failure to bind is fatal: no tick loop runs without a
// surface for its clients.
func StartApp(addr string, cfg AppConfig) {
	tuning := cfg.Overrides.apply(game.DefaultTuning())
	hub := game.NewHub(tuning, cfg.Seed)

	// Periodic reaping of sessions nobody watches.
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			hub.CleanupIdleSessions()
		}
	}()

	log.Printf("starting web server on %s (win %d, spawn every %s, batch %d)",
		addr, tuning.WinScore, tuning.SpawnInterval, tuning.SpawnBatch)
	startServer(hub, addr)
}
