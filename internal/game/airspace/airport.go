package airspace

import (
	"errors"
	"fmt"
	"strings"

	"radar-atc/pkg/types"
)

var ErrUnknownAirport = errors.New("unknown airport")

// Runway ends are offsets in NM from the airport reference point.
type Runway struct {
	Name    string
	Start   types.Vec2
	End     types.Vec2
	WidthFt float64
}

func (r Runway) Heading() float64 {
	return r.Start.HeadingTo(r.End)
}

func (r Runway) Length() float64 {
	return r.Start.DistanceTo(r.End)
}

type Airport struct {
	ICAO    string
	Name    string
	Runways []Runway
}

func newAirport(icao, name string, runways ...Runway) *Airport {
	return &Airport{ICAO: icao, Name: name, Runways: runways}
}

func rwy(name string, x1, y1, x2, y2, width float64) Runway {
	return Runway{Name: name, Start: types.NewVec2(x1, y1), End: types.NewVec2(x2, y2), WidthFt: width}
}

func DefaultAirports() map[string]*Airport {
	airports := []*Airport{
		newAirport("KRST", "Rochester International",
			rwy("13/31", -1.2, 0.5, 1.2, -0.5, 150),
			rwy("3/21", -0.8, -1.0, 0.8, 1.0, 150)),
		newAirport("KMSP", "Minneapolis-St. Paul International",
			rwy("12R/30L", -1.5, 0.7, 1.5, -0.7, 200),
			rwy("12L/30R", -1.2, 1.2, 1.2, -1.2, 150),
			rwy("4/22", -1.0, -1.5, 1.0, 1.5, 150),
			rwy("17/35", 0.2, -1.8, -0.2, 1.8, 150)),
		newAirport("KORD", "Chicago O'Hare International",
			rwy("10L/28R", -2.0, 0.3, 2.0, -0.3, 150),
			rwy("9R/27L", -1.8, 1.0, 1.8, 0.4, 150),
			rwy("10C/28C", -1.7, -0.5, 1.7, -1.1, 200),
			rwy("9C/27C", -1.8, 0.8, 1.8, 0.2, 200),
			rwy("4R/22L", -0.5, -1.5, 0.5, 1.5, 150),
			rwy("4L/22R", -1.2, -0.8, 1.2, 0.8, 150),
			rwy("9L/27R", -1.2, 1.5, 1.2, 0.9, 150),
			rwy("10R/28L", -1.2, -1.2, 1.2, -1.8, 150)),
	}

	m := make(map[string]*Airport, len(airports))
	for _, a := range airports {
		m[a.ICAO] = a
	}
	return m
}

// SetActiveAirport places the airport at the origin and adds a waypoint
// for it.
func (ap *Airspace) SetActiveAirport(icao string) error {
	icao = strings.ToUpper(strings.TrimSpace(icao))
	airport, ok := ap.Airports[icao]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAirport, icao)
	}
	ap.Active = airport
	ap.AddWaypoint(icao, types.NewVec2(0, 0), types.WaypointAirport)
	return nil
}

func (ap *Airspace) AirportCodes() []string {
	return types.SortedKeys(ap.Airports)
}
