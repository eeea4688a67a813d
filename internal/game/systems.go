package game

import (
	"math"
	"time"
)

// Tick runs one synchronous simulation pass: spawn, integrate, resolve
// collisions, age explosions, then the once-per-tick win check. The defeat
// check runs inside resolveCollisions, right after the phase that can
// destroy structures, so GAMEOVER lands on the exact tick of the final
// loss. Outside PhasePlaying a tick is a no-op.
func (s *Session) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Phase != PhasePlaying {
		return
	}
	s.Now += Dt

	s.spawnWave(now)
	s.integrate()
	s.resolveCollisions()
	if s.Phase != PhasePlaying {
		return
	}
	s.updateExplosions()
	if s.Score >= s.Tuning.WinScore {
		s.Phase = PhaseWin
	}
}

// spawnWave emits a discrete batch once the wall clock has moved a full
// interval past the timer reference. The reference only advances on the
// tick a batch fires, so cadence is tied to real elapsed time, not frame
// rate.
func (s *Session) spawnWave(now time.Time) {
	if now.Sub(s.lastSpawn) < s.Tuning.SpawnInterval {
		return
	}
	s.lastSpawn = now
	speed := s.Tuning.ProjectileBaseSpeed + float64(s.Score)/s.Tuning.ScoreSpeedDivisor
	for i := 0; i < s.Tuning.SpawnBatch; i++ {
		s.Projectiles = append(s.Projectiles, Projectile{
			ID:     s.newEntityID(),
			Pos:    Vec2{X: s.rng.Float64() * PlayfieldW, Y: 0},
			Target: Vec2{X: s.rng.Float64() * PlayfieldW, Y: GroundY},
			Speed:  speed,
		})
	}
}

// integrate advances every moving entity one step along the straight line
// to its fixed target.
func (s *Session) integrate() {
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		p.Pos = stepToward(p.Pos, p.Target, p.Speed)
	}
	for i := range s.Interceptors {
		m := &s.Interceptors[i]
		m.Pos = stepToward(m.Pos, m.Target, s.Tuning.InterceptorSpeed)
	}
}

// resolveCollisions applies the three kill rules in order: proximity kill,
// interceptor arrival, ground impact. An entity consumed by one rule never
// reaches the next within the same tick.
func (s *Session) resolveCollisions() {
	// Interceptors newest-first; each may remove at most one projectile,
	// first match wins.
	for i := len(s.Interceptors) - 1; i >= 0; i-- {
		m := s.Interceptors[i]
		hit := false
		for j := 0; j < len(s.Projectiles); j++ {
			if Dist(m.Pos, s.Projectiles[j].Pos) < s.Tuning.KillRadius {
				s.destroyProjectile(j)
				hit = true
				break
			}
		}
		if hit {
			s.Interceptors = append(s.Interceptors[:i], s.Interceptors[i+1:]...)
			continue
		}
		// Arrival: the next step would overshoot, so detonate at the
		// target coordinate rather than the current position.
		if Dist(m.Pos, m.Target) < s.Tuning.InterceptorSpeed {
			s.spawnExplosion(m.Target, true)
			s.Interceptors = append(s.Interceptors[:i], s.Interceptors[i+1:]...)
		}
	}

	for i := len(s.Projectiles) - 1; i >= 0; i-- {
		p := s.Projectiles[i]
		if p.Pos.Y >= GroundY {
			s.Projectiles = append(s.Projectiles[:i], s.Projectiles[i+1:]...)
			s.spawnExplosion(Vec2{X: p.Pos.X, Y: GroundY}, false)
			s.applyGroundImpact(p.Pos.X)
		}
	}
	s.checkDefeat()
}

// destroyProjectile removes the projectile at idx, leaves a friendly blast
// at its position (kills can chain) and awards the per-kill score.
func (s *Session) destroyProjectile(idx int) {
	p := s.Projectiles[idx]
	s.Projectiles = append(s.Projectiles[:idx], s.Projectiles[idx+1:]...)
	s.spawnExplosion(p.Pos, true)
	s.Score += s.Tuning.ScorePerKill
}

// applyGroundImpact destroys every live station within the shared hit
// radius of the impact x. Dead stations are skipped, which makes the
// operation idempotent.
func (s *Session) applyGroundImpact(x float64) {
	for i := range s.Batteries {
		b := &s.Batteries[i]
		if b.Alive && math.Abs(b.X-x) < s.Tuning.StationHitRadius {
			b.Alive = false
		}
	}
	for i := range s.Structures {
		c := &s.Structures[i]
		if c.Alive && math.Abs(c.X-x) < s.Tuning.StationHitRadius {
			c.Alive = false
		}
	}
}

func (s *Session) checkDefeat() {
	for i := range s.Structures {
		if s.Structures[i].Alive {
			return
		}
	}
	s.Phase = PhaseGameOver
}

// updateExplosions grows every blast and drops it on the tick its radius
// exceeds the maximum. Live friendly blasts re-sweep the projectile store
// every tick, so an expanding blast keeps collecting kills; across
// overlapping blasts the first one processed wins a given projectile.
func (s *Session) updateExplosions() {
	for i := len(s.Explosions) - 1; i >= 0; i-- {
		s.Explosions[i].Radius += s.Tuning.BlastGrowth
		if s.Explosions[i].Radius > s.Tuning.BlastMaxRadius {
			s.Explosions = append(s.Explosions[:i], s.Explosions[i+1:]...)
			continue
		}
		e := s.Explosions[i]
		if !e.Friendly {
			continue
		}
		for j := len(s.Projectiles) - 1; j >= 0; j-- {
			if Dist(e.Pos, s.Projectiles[j].Pos) < e.Radius {
				s.destroyProjectile(j)
			}
		}
	}
}
