package game

const (
	TickHz      = 60.0         // simulation tick rate
	Dt          = 1.0 / TickHz // seconds per tick
	StatePushHz = 30.0         // per-client WS state pushes

	PlayfieldW  = 800.0
	PlayfieldH  = 600.0
	GroundBandH = 40.0
	GroundY     = PlayfieldH - GroundBandH // ground line; no firing below this
)

// Fixed horizontal stations. Batteries flank and anchor the line,
// structures sit in the gaps between them.
var (
	BatteryStations   = [3]float64{100, 400, 700}
	StructureStations = [6]float64{175, 250, 325, 475, 550, 625}
)
