package main

import (
	"flag"
	"math"

	"CitadelCommand/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = wall clock)")
	flankAmmo := flag.Int("flank-ammo", -1, "override left/right battery ammo quota")
	centerAmmo := flag.Int("center-ammo", -1, "override center battery ammo quota")
	blastRadius := flag.Float64("blast-radius", math.NaN(), "override maximum blast radius")
	blastGrowth := flag.Float64("blast-growth", math.NaN(), "override blast growth per tick")
	scorePerKill := flag.Int("score-per-kill", -1, "override score per projectile kill")
	winScore := flag.Int("win-score", -1, "override win threshold")
	interceptorSpeed := flag.Float64("interceptor-speed", math.NaN(), "override interceptor speed (units/tick)")
	projectileSpeed := flag.Float64("projectile-speed", math.NaN(), "override projectile base speed (units/tick)")
	spawnIntervalMs := flag.Int("spawn-interval-ms", -1, "override spawn interval in milliseconds")
	spawnBatch := flag.Int("spawn-batch", -1, "override projectiles per spawn batch")
	hitRadius := flag.Float64("hit-radius", math.NaN(), "override station hit radius")
	killRadius := flag.Float64("kill-radius", math.NaN(), "override proximity kill radius")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.Seed = *seed

	var overrides server.TuningOverrides

	if *flankAmmo >= 0 {
		overrides.FlankAmmo = flankAmmo
	}
	if *centerAmmo >= 0 {
		overrides.CenterAmmo = centerAmmo
	}
	if !math.IsNaN(*blastRadius) {
		overrides.BlastMaxRadius = blastRadius
	}
	if !math.IsNaN(*blastGrowth) {
		overrides.BlastGrowth = blastGrowth
	}
	if *scorePerKill >= 0 {
		overrides.ScorePerKill = scorePerKill
	}
	if *winScore >= 0 {
		overrides.WinScore = winScore
	}
	if !math.IsNaN(*interceptorSpeed) {
		overrides.InterceptorSpeed = interceptorSpeed
	}
	if !math.IsNaN(*projectileSpeed) {
		overrides.ProjectileBaseSpeed = projectileSpeed
	}
	if *spawnIntervalMs >= 0 {
		overrides.SpawnIntervalMs = spawnIntervalMs
	}
	if *spawnBatch >= 0 {
		overrides.SpawnBatch = spawnBatch
	}
	if !math.IsNaN(*hitRadius) {
		overrides.StationHitRadius = hitRadius
	}
	if !math.IsNaN(*killRadius) {
		overrides.KillRadius = killRadius
	}

	cfg.Overrides = overrides

	server.StartApp(*addr, cfg)
}
