package game

import "time"

// Tuning holds the gameplay numbers. Defaults are the canonical arcade
// values; the server may apply command-line overrides before a hub is
// built, after which a session's tuning never changes except via reset.
type Tuning struct {
	FlankAmmo           int           // left/right battery quota
	CenterAmmo          int           // center battery quota
	BlastMaxRadius      float64       // explosion removed once radius exceeds this
	BlastGrowth         float64       // radius increment per tick
	ScorePerKill        int
	WinScore            int
	InterceptorSpeed    float64 // units per tick, global constant
	ProjectileBaseSpeed float64 // units per tick before score scaling
	ScoreSpeedDivisor   float64 // projectile speed = base + score/divisor
	SpawnInterval       time.Duration
	SpawnBatch          int
	StationHitRadius    float64 // ground impact vs battery/structure stations
	KillRadius          float64 // interceptor vs projectile proximity kill
}

func DefaultTuning() Tuning {
	return Tuning{
		FlankAmmo:           15,
		CenterAmmo:          30,
		BlastMaxRadius:      40,
		BlastGrowth:         1,
		ScorePerKill:        25,
		WinScore:            1500,
		InterceptorSpeed:    7,
		ProjectileBaseSpeed: 0.7,
		ScoreSpeedDivisor:   3000,
		SpawnInterval:       5 * time.Second,
		SpawnBatch:          3,
		StationHitRadius:    25,
		KillRadius:          20,
	}
}

// SanitizeTuning replaces values the simulation cannot run with (zero or
// negative rates, radii, quotas) with their defaults.
func SanitizeTuning(t Tuning) Tuning {
	def := DefaultTuning()
	if t.FlankAmmo <= 0 {
		t.FlankAmmo = def.FlankAmmo
	}
	if t.CenterAmmo <= 0 {
		t.CenterAmmo = def.CenterAmmo
	}
	if t.BlastMaxRadius <= 0 {
		t.BlastMaxRadius = def.BlastMaxRadius
	}
	if t.BlastGrowth <= 0 {
		t.BlastGrowth = def.BlastGrowth
	}
	if t.ScorePerKill <= 0 {
		t.ScorePerKill = def.ScorePerKill
	}
	if t.WinScore <= 0 {
		t.WinScore = def.WinScore
	}
	if t.InterceptorSpeed <= 0 {
		t.InterceptorSpeed = def.InterceptorSpeed
	}
	if t.ProjectileBaseSpeed <= 0 {
		t.ProjectileBaseSpeed = def.ProjectileBaseSpeed
	}
	if t.ScoreSpeedDivisor <= 0 {
		t.ScoreSpeedDivisor = def.ScoreSpeedDivisor
	}
	if t.SpawnInterval <= 0 {
		t.SpawnInterval = def.SpawnInterval
	}
	if t.SpawnBatch <= 0 {
		t.SpawnBatch = def.SpawnBatch
	}
	if t.StationHitRadius <= 0 {
		t.StationHitRadius = def.StationHitRadius
	}
	if t.KillRadius <= 0 {
		t.KillRadius = def.KillRadius
	}
	return t
}
