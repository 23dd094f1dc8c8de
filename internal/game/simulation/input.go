package simulation

import (
	"radar-atc/internal/config"
	"radar-atc/internal/game/command"
	"radar-atc/pkg/types"
)

// Operator intents. All of these work while paused.

func (s *Simulation) Command(kind command.Kind) {
	s.Commands.Dispatch(kind, s.SelectedAircraft(), s)
}

func (s *Simulation) Digit(d int) {
	s.Commands.Digit(d, s.SelectedAircraft())
}

func (s *Simulation) Enter() {
	s.Commands.Enter(s.SelectedAircraft(), s)
}

func (s *Simulation) CancelCommand() {
	s.Commands.Cancel()
}

// Click handles a pick at a world position: an armed direct-to takes it
// first, otherwise the closest aircraft within the click radius becomes
// selected, or the selection is cleared. Picks outside the radar range
// are ignored.
func (s *Simulation) Click(pos types.Vec2) {
	if s.Commands.Point(pos, s.SelectedAircraft(), s) {
		return
	}
	if !s.Airspace.InRange(pos) {
		return
	}
	if ac := s.AircraftAt(pos, config.AircraftClickRadius); ac != nil {
		s.SelectAircraft(ac.Callsign)
	} else {
		s.ClearSelection()
	}
}

// CycleSelection selects the next aircraft in callsign order.
func (s *Simulation) CycleSelection() {
	names := types.SortedKeys(s.Aircrafts)
	if len(names) == 0 {
		s.ClearSelection()
		return
	}
	for _, cs := range names {
		if cs > s.selected {
			s.selected = cs
			return
		}
	}
	s.selected = names[0]
}
