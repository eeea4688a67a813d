package game

// Snapshot is the read-only view handed to render collaborators once per
// state push, built in one pass under the session lock. Headings are
// derived here so clients never recompute trajectory math.
type Snapshot struct {
	Now   float64
	Phase Phase
	Score int

	Projectiles  []ProjectileView
	Interceptors []InterceptorView
	Explosions   []ExplosionView
	Batteries    [3]BatteryView
	Structures   [6]StructureView
}

type ProjectileView struct {
	ID      EntityID
	X, Y    float64
	Heading float64
}

type InterceptorView struct {
	ID      EntityID
	X, Y    float64
	OX, OY  float64 // launch origin, for the trail
	TX, TY  float64
	Heading float64
}

type ExplosionView struct {
	ID       EntityID
	X, Y     float64
	Radius   float64
	Friendly bool
}

type BatteryView struct {
	X     float64
	Alive bool
	Ammo  int
}

type StructureView struct {
	X     float64
	Alive bool
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Now:   s.Now,
		Phase: s.Phase,
		Score: s.Score,
	}
	if len(s.Projectiles) > 0 {
		snap.Projectiles = make([]ProjectileView, len(s.Projectiles))
		for i := range s.Projectiles {
			p := &s.Projectiles[i]
			snap.Projectiles[i] = ProjectileView{
				ID: p.ID, X: p.Pos.X, Y: p.Pos.Y, Heading: p.Heading(),
			}
		}
	}
	if len(s.Interceptors) > 0 {
		snap.Interceptors = make([]InterceptorView, len(s.Interceptors))
		for i := range s.Interceptors {
			m := &s.Interceptors[i]
			snap.Interceptors[i] = InterceptorView{
				ID: m.ID, X: m.Pos.X, Y: m.Pos.Y,
				OX: m.Origin.X, OY: m.Origin.Y,
				TX: m.Target.X, TY: m.Target.Y,
				Heading: m.Heading(),
			}
		}
	}
	if len(s.Explosions) > 0 {
		snap.Explosions = make([]ExplosionView, len(s.Explosions))
		for i, e := range s.Explosions {
			snap.Explosions[i] = ExplosionView{
				ID: e.ID, X: e.Pos.X, Y: e.Pos.Y,
				Radius: e.Radius, Friendly: e.Friendly,
			}
		}
	}
	for i, b := range s.Batteries {
		snap.Batteries[i] = BatteryView{X: b.X, Alive: b.Alive, Ammo: b.Ammo}
	}
	for i, c := range s.Structures {
		snap.Structures[i] = StructureView{X: c.X, Alive: c.Alive}
	}
	return snap
}
