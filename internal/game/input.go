package game

import "math"

// Fire maps a fire command at a playfield coordinate to an interceptor
// launch. Invalid commands (not playing, ground band, no eligible battery)
// are dropped silently; the boolean is for callers and tests, not player
// feedback. Fire runs off the tick loop, serialized by the session mutex.
func (s *Session) Fire(at Vec2) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Phase != PhasePlaying {
		return false
	}
	if at.Y > GroundY {
		return false
	}

	// Nearest surviving battery with ammo, by horizontal distance.
	best := -1
	bestDist := math.MaxFloat64
	for i := range s.Batteries {
		b := s.Batteries[i]
		if !b.Alive || b.Ammo <= 0 {
			continue
		}
		if d := math.Abs(b.X - at.X); d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return false
	}

	s.Batteries[best].Ammo--
	launch := Vec2{X: s.Batteries[best].X, Y: GroundY}
	s.Interceptors = append(s.Interceptors, Interceptor{
		ID:     s.newEntityID(),
		Pos:    launch,
		Origin: launch,
		Target: at,
	})
	return true
}
