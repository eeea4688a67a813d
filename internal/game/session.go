package game

import (
	"math/rand"
	"sync"
	"time"
)

// Session is one independent playfield: all three entity stores, the
// defended stations, score and phase. Entity stores are slices spliced in
// place; every pass that removes entries iterates back-to-front so indices
// stay valid. The mutex serializes the tick loop against fire commands and
// snapshot reads, which is the whole concurrency model.
type Session struct {
	ID     string
	Now    float64 // simulation seconds, advances by Dt per tick
	Tuning Tuning

	Score int
	Phase Phase

	Projectiles  []Projectile
	Interceptors []Interceptor
	Explosions   []Explosion
	Batteries    [3]Battery
	Structures   [6]Structure

	mu        sync.Mutex
	nextID    EntityID
	rng       *rand.Rand
	lastSpawn time.Time
	clients   int
}

// NewSession starts in PhaseStart with empty stores and full stations.
// Seed 0 falls back to the wall clock.
func NewSession(id string, tuning Tuning, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		ID:     id,
		Tuning: SanitizeTuning(tuning),
		rng:    rand.New(rand.NewSource(seed)),
	}
	s.initStations()
	return s
}

func (s *Session) initStations() {
	for i, x := range BatteryStations {
		ammo := s.Tuning.FlankAmmo
		if i == 1 {
			ammo = s.Tuning.CenterAmmo
		}
		s.Batteries[i] = Battery{X: x, Alive: true, Ammo: ammo}
	}
	for i, x := range StructureStations {
		s.Structures[i] = Structure{X: x, Alive: true}
	}
}

func (s *Session) newEntityID() EntityID {
	s.nextID++
	return s.nextID
}

// StartOrReset is the only external control command: START to PLAYING, or
// any terminal state back to PLAYING with everything reinitialized. It is
// ignored mid-game.
func (s *Session) StartOrReset(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Phase == PhasePlaying {
		return
	}
	s.Projectiles = s.Projectiles[:0]
	s.Interceptors = s.Interceptors[:0]
	s.Explosions = s.Explosions[:0]
	s.Score = 0
	s.initStations()
	s.lastSpawn = now
	s.Phase = PhasePlaying
}

func (s *Session) spawnExplosion(pos Vec2, friendly bool) {
	s.Explosions = append(s.Explosions, Explosion{
		ID:       s.newEntityID(),
		Pos:      pos,
		Friendly: friendly,
	})
}

// AddClient and RemoveClient track attached render collaborators so the
// hub can reap abandoned sessions.
func (s *Session) AddClient() {
	s.mu.Lock()
	s.clients++
	s.mu.Unlock()
}

func (s *Session) RemoveClient() {
	s.mu.Lock()
	if s.clients > 0 {
		s.clients--
	}
	s.mu.Unlock()
}

func (s *Session) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients
}

// Hub owns sessions by id and runs one tick loop per session.
type Hub struct {
	Mu       sync.Mutex
	Sessions map[string]*Session

	tuning Tuning
	seed   int64
	runner func(*Session) func() // returns the stop func for a started loop
	stops  map[string]func()
}

func NewHub(tuning Tuning, seed int64) *Hub {
	h := &Hub{
		Sessions: map[string]*Session{},
		tuning:   SanitizeTuning(tuning),
		seed:     seed,
		stops:    map[string]func(){},
	}
	h.runner = startLoop
	return h
}

// GetSession returns the session for id, creating it and starting its tick
// loop on first use.
func (h *Hub) GetSession(id string) *Session {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	s, ok := h.Sessions[id]
	if !ok {
		seed := h.seed
		if seed != 0 {
			// Distinct streams per session under a fixed hub seed.
			seed += int64(len(h.Sessions)) + 1
		}
		s = NewSession(id, h.tuning, seed)
		h.Sessions[id] = s
		h.stops[id] = h.runner(s)
	}
	return s
}

// CleanupIdleSessions stops and drops every session with no attached
// clients. Called periodically by the server.
func (h *Hub) CleanupIdleSessions() {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	for id, s := range h.Sessions {
		if s.ClientCount() > 0 {
			continue
		}
		if stop := h.stops[id]; stop != nil {
			stop()
		}
		delete(h.stops, id)
		delete(h.Sessions, id)
	}
}

// Shutdown stops every session loop.
func (h *Hub) Shutdown() {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	for id, stop := range h.stops {
		if stop != nil {
			stop()
		}
		delete(h.stops, id)
	}
}
