package simulation

import (
	"github.com/brunoga/deep"

	"radar-atc/internal/game/aircraft"
	"radar-atc/internal/game/airspace"
	"radar-atc/internal/game/conflict"
	"radar-atc/pkg/types"
)

// State is a self-contained copy of the world for clients that must not
// hold on to the live maps.
type State struct {
	Time       float64             `json:"time" msgpack:"time"`
	Score      float64             `json:"score" msgpack:"score"`
	Paused     bool                `json:"paused" msgpack:"paused"`
	Speed      float64             `json:"speed" msgpack:"speed"`
	SpawnTimer float64             `json:"spawn_timer" msgpack:"spawn_timer"`
	Aircraft   []aircraft.Aircraft `json:"aircraft" msgpack:"aircraft"`
	Conflicts  []conflict.Pair     `json:"conflicts" msgpack:"conflicts"`
	Selected   types.Callsign      `json:"selected,omitempty" msgpack:"selected"`
	Armed      string              `json:"armed" msgpack:"armed"`
	Pending    *float64            `json:"pending,omitempty" msgpack:"pending"`
	Waypoints  []types.Waypoint    `json:"waypoints" msgpack:"waypoints"`
	Airport    string              `json:"airport,omitempty" msgpack:"airport"`
	Weather    airspace.Weather    `json:"weather" msgpack:"weather"`
	Radio      []RadioMessage      `json:"radio" msgpack:"radio"`
	Stats      Stats               `json:"stats" msgpack:"stats"`
}

func (s *Simulation) Snapshot() State {
	st := State{
		Time:       s.GameTimeSeconds,
		Score:      s.score,
		Paused:     s.paused,
		Speed:      s.speed,
		SpawnTimer: s.spawnTimer,
		Aircraft:   make([]aircraft.Aircraft, 0, len(s.Aircrafts)),
		Conflicts:  s.conflicts.Sorted(),
		Selected:   s.selected,
		Armed:      s.Commands.Armed().String(),
		Weather:    deep.MustCopy(s.weather),
		Radio:      deep.MustCopy(s.RadioLog),
		Stats:      s.Stats,
	}
	for _, ac := range s.AllAircraft() {
		st.Aircraft = append(st.Aircraft, deep.MustCopy(*ac))
	}
	for _, name := range s.Airspace.WaypointNames() {
		st.Waypoints = append(st.Waypoints, *s.Airspace.Waypoints[name])
	}
	if s.Airspace.Active != nil {
		st.Airport = s.Airspace.Active.ICAO
	}
	if v, ok := s.Commands.Pending(); ok {
		st.Pending = &v
	}
	return st
}
