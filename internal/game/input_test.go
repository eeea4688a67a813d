package game

import (
	"testing"
	"time"
)

func totalAmmo(s *Session) int {
	n := 0
	for _, b := range s.Batteries {
		n += b.Ammo
	}
	return n
}

func TestFireRejectedOutsidePlaying(t *testing.T) {
	s := NewSession("test", DefaultTuning(), 1)
	if s.Fire(Vec2{X: 400, Y: 200}) {
		t.Error("fire accepted before the session started")
	}
	if len(s.Interceptors) != 0 {
		t.Error("interceptor created outside PLAYING")
	}
}

// TestFireRejectedInGroundBand: no firing into the reserved ground strip,
// and no ammo is spent on the attempt.
func TestFireRejectedInGroundBand(t *testing.T) {
	s := newPlayingSession(t, time.Unix(100, 0))
	ammo := totalAmmo(s)
	if s.Fire(Vec2{X: 400, Y: PlayfieldH - 20}) {
		t.Error("fire accepted inside the ground band")
	}
	if len(s.Interceptors) != 0 {
		t.Error("interceptor created for a ground-band command")
	}
	if totalAmmo(s) != ammo {
		t.Error("ammo spent on a rejected command")
	}
}

func TestFireSelectsNearestBattery(t *testing.T) {
	s := newPlayingSession(t, time.Unix(100, 0))

	if !s.Fire(Vec2{X: 650, Y: 250}) {
		t.Fatal("valid fire command rejected")
	}
	if s.Batteries[2].Ammo != s.Tuning.FlankAmmo-1 {
		t.Errorf("right battery should fire for x=650, ammo %d", s.Batteries[2].Ammo)
	}
	m := s.Interceptors[0]
	if m.Origin.X != BatteryStations[2] || m.Origin.Y != GroundY {
		t.Errorf("launch origin (%.0f, %.0f), expected the right battery station", m.Origin.X, m.Origin.Y)
	}
	if m.Target != (Vec2{X: 650, Y: 250}) {
		t.Errorf("interceptor target %v, expected the command coordinate", m.Target)
	}
	if m.Pos != m.Origin {
		t.Error("interceptor must start at its launch origin")
	}
}

// TestFireSkipsIneligibleCenter: with the center battery out of ammo, a
// shot near the center station must come from the nearest eligible flank.
func TestFireSkipsIneligibleCenter(t *testing.T) {
	s := newPlayingSession(t, time.Unix(100, 0))
	s.Batteries[1].Ammo = 0

	if !s.Fire(Vec2{X: 390, Y: 300}) {
		t.Fatal("fire rejected although flank batteries are eligible")
	}
	if s.Batteries[0].Ammo != s.Tuning.FlankAmmo-1 {
		t.Errorf("left battery should serve x=390, ammo %d", s.Batteries[0].Ammo)
	}
	if s.Batteries[2].Ammo != s.Tuning.FlankAmmo {
		t.Error("right battery fired although left is closer")
	}
}

// TestFireSkipsDestroyedBattery mirrors the ammo case for the alive flag.
func TestFireSkipsDestroyedBattery(t *testing.T) {
	s := newPlayingSession(t, time.Unix(100, 0))
	s.Batteries[1].Alive = false

	if !s.Fire(Vec2{X: 410, Y: 300}) {
		t.Fatal("fire rejected although flank batteries survive")
	}
	if s.Batteries[2].Ammo != s.Tuning.FlankAmmo-1 {
		t.Errorf("right battery should serve x=410, ammo %d", s.Batteries[2].Ammo)
	}
}

func TestFireDroppedWithoutEligibleBattery(t *testing.T) {
	s := newPlayingSession(t, time.Unix(100, 0))
	for i := range s.Batteries {
		s.Batteries[i].Ammo = 0
	}
	if s.Fire(Vec2{X: 400, Y: 200}) {
		t.Error("fire accepted with every battery empty")
	}
	if len(s.Interceptors) != 0 {
		t.Error("interceptor created without ammo")
	}
}

func TestFireConsumesExactlyOneRound(t *testing.T) {
	s := newPlayingSession(t, time.Unix(100, 0))
	before := totalAmmo(s)
	s.Fire(Vec2{X: 120, Y: 200})
	if got := totalAmmo(s); got != before-1 {
		t.Errorf("total ammo %d -> %d, expected exactly one round spent", before, got)
	}
}
