package server

import (
	"time"

	"CitadelCommand/internal/game"
)

// TuningOverrides carries optional command-line overrides for the gameplay
// numbers. Nil fields keep the default; the result is sanitized, never
// rejected.
type TuningOverrides struct {
	FlankAmmo           *int
	CenterAmmo          *int
	BlastMaxRadius      *float64
	BlastGrowth         *float64
	ScorePerKill        *int
	WinScore            *int
	InterceptorSpeed    *float64
	ProjectileBaseSpeed *float64
	SpawnIntervalMs     *int
	SpawnBatch          *int
	StationHitRadius    *float64
	KillRadius          *float64
}

func (o TuningOverrides) apply(base game.Tuning) game.Tuning {
	if o.FlankAmmo != nil {
		base.FlankAmmo = *o.FlankAmmo
	}
	if o.CenterAmmo != nil {
		base.CenterAmmo = *o.CenterAmmo
	}
	if o.BlastMaxRadius != nil {
		base.BlastMaxRadius = *o.BlastMaxRadius
	}
	if o.BlastGrowth != nil {
		base.BlastGrowth = *o.BlastGrowth
	}
	if o.ScorePerKill != nil {
		base.ScorePerKill = *o.ScorePerKill
	}
	if o.WinScore != nil {
		base.WinScore = *o.WinScore
	}
	if o.InterceptorSpeed != nil {
		base.InterceptorSpeed = *o.InterceptorSpeed
	}
	if o.ProjectileBaseSpeed != nil {
		base.ProjectileBaseSpeed = *o.ProjectileBaseSpeed
	}
	if o.SpawnIntervalMs != nil {
		base.SpawnInterval = time.Duration(*o.SpawnIntervalMs) * time.Millisecond
	}
	if o.SpawnBatch != nil {
		base.SpawnBatch = *o.SpawnBatch
	}
	if o.StationHitRadius != nil {
		base.StationHitRadius = *o.StationHitRadius
	}
	if o.KillRadius != nil {
		base.KillRadius = *o.KillRadius
	}
	return game.SanitizeTuning(base)
}
