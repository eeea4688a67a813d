package game

type EntityID int64

type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseWin
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseWin:
		return "win"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Projectile is a hostile entity descending toward a fixed target on the
// ground line. Target never changes after spawn.
type Projectile struct {
	ID     EntityID
	Pos    Vec2
	Target Vec2
	Speed  float64 // units per tick, set at spawn from the current score
}

func (p *Projectile) Heading() float64 { return headingTo(p.Pos, p.Target) }

// Interceptor is a player-fired entity. Origin is the battery launch point,
// kept so clients can draw the trail. Speed is the global tuning constant.
type Interceptor struct {
	ID     EntityID
	Pos    Vec2
	Origin Vec2
	Target Vec2
}

func (m *Interceptor) Heading() float64 { return headingTo(m.Pos, m.Target) }

// Explosion is an expanding blast. Only friendly blasts (interceptor
// detonations and chain kills) damage projectiles.
type Explosion struct {
	ID       EntityID
	Pos      Vec2
	Radius   float64
	Friendly bool
}

type Battery struct {
	X     float64
	Alive bool
	Ammo  int
}

type Structure struct {
	X     float64
	Alive bool
}
