package airspace

import (
	"radar-atc/pkg/types"
)

type Airspace struct {
	Waypoints map[string]*types.Waypoint
	Airports  map[string]*Airport
	Active    *Airport

	RadarRange float64
}

// NewAirspace returns an airspace with the four compass fixes at 0.8 of
// the radar range and CENTER at the origin.
func NewAirspace(radarRange float64) *Airspace {
	ap := &Airspace{
		Waypoints:  make(map[string]*types.Waypoint),
		Airports:   DefaultAirports(),
		RadarRange: radarRange,
	}

	ap.AddWaypoint("NORTH", types.NewVec2(0, radarRange*0.8), types.WaypointFix)
	ap.AddWaypoint("SOUTH", types.NewVec2(0, -radarRange*0.8), types.WaypointFix)
	ap.AddWaypoint("EAST", types.NewVec2(radarRange*0.8, 0), types.WaypointFix)
	ap.AddWaypoint("WEST", types.NewVec2(-radarRange*0.8, 0), types.WaypointFix)
	ap.AddWaypoint("CENTER", types.NewVec2(0, 0), types.WaypointFix)

	return ap
}

// AddWaypoint returns false if name is already taken. An empty kind
// means a fix.
func (ap *Airspace) AddWaypoint(name string, pos types.Vec2, kind types.WaypointKind) bool {
	if _, ok := ap.Waypoints[name]; ok {
		return false
	}
	if kind == "" {
		kind = types.WaypointFix
	}
	ap.Waypoints[name] = &types.Waypoint{Name: name, Position: pos, Kind: kind}
	return true
}

func (ap *Airspace) Waypoint(name string) (*types.Waypoint, bool) {
	wp, ok := ap.Waypoints[name]
	return wp, ok
}

func (ap *Airspace) WaypointNames() []string {
	return types.SortedKeys(ap.Waypoints)
}

func (ap *Airspace) InRange(p types.Vec2) bool {
	return p.Norm() <= ap.RadarRange
}
