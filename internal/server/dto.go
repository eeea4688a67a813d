package server

import "CitadelCommand/internal/game"

type projectileDTO struct {
	ID      int64   `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

type interceptorDTO struct {
	ID      int64   `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	OX      float64 `json:"ox"`
	OY      float64 `json:"oy"`
	TX      float64 `json:"tx"`
	TY      float64 `json:"ty"`
	Heading float64 `json:"heading"`
}

type explosionDTO struct {
	ID       int64   `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	R        float64 `json:"r"`
	Friendly bool    `json:"friendly"`
}

type batteryDTO struct {
	X     float64 `json:"x"`
	Alive bool    `json:"alive"`
	Ammo  int     `json:"ammo"`
}

type structureDTO struct {
	X     float64 `json:"x"`
	Alive bool    `json:"alive"`
}

type fieldMeta struct {
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Ground float64 `json:"ground"`
}

type stateMsg struct {
	Type         string           `json:"type"`
	Now          float64          `json:"now"`
	Phase        string           `json:"phase"`
	Score        int              `json:"score"`
	Projectiles  []projectileDTO  `json:"projectiles"`
	Interceptors []interceptorDTO `json:"interceptors"`
	Explosions   []explosionDTO   `json:"explosions"`
	Batteries    []batteryDTO     `json:"batteries"`
	Structures   []structureDTO   `json:"structures"`
	Meta         fieldMeta        `json:"meta"`
}

type welcomeMsg struct {
	Type     string    `json:"type"`
	ClientID string    `json:"client_id"`
	Session  string    `json:"session"`
	Meta     fieldMeta `json:"meta"`
}

func playfieldMeta() fieldMeta {
	return fieldMeta{W: game.PlayfieldW, H: game.PlayfieldH, Ground: game.GroundY}
}

func stateFromSnapshot(snap game.Snapshot) stateMsg {
	msg := stateMsg{
		Type:         "state",
		Now:          snap.Now,
		Phase:        snap.Phase.String(),
		Score:        snap.Score,
		Projectiles:  make([]projectileDTO, len(snap.Projectiles)),
		Interceptors: make([]interceptorDTO, len(snap.Interceptors)),
		Explosions:   make([]explosionDTO, len(snap.Explosions)),
		Batteries:    make([]batteryDTO, len(snap.Batteries)),
		Structures:   make([]structureDTO, len(snap.Structures)),
		Meta:         playfieldMeta(),
	}
	for i, p := range snap.Projectiles {
		msg.Projectiles[i] = projectileDTO{ID: int64(p.ID), X: p.X, Y: p.Y, Heading: p.Heading}
	}
	for i, m := range snap.Interceptors {
		msg.Interceptors[i] = interceptorDTO{
			ID: int64(m.ID), X: m.X, Y: m.Y,
			OX: m.OX, OY: m.OY, TX: m.TX, TY: m.TY,
			Heading: m.Heading,
		}
	}
	for i, e := range snap.Explosions {
		msg.Explosions[i] = explosionDTO{ID: int64(e.ID), X: e.X, Y: e.Y, R: e.Radius, Friendly: e.Friendly}
	}
	for i, b := range snap.Batteries {
		msg.Batteries[i] = batteryDTO{X: b.X, Alive: b.Alive, Ammo: b.Ammo}
	}
	for i, c := range snap.Structures {
		msg.Structures[i] = structureDTO{X: c.X, Alive: c.Alive}
	}
	return msg
}
