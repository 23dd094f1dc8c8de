package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"regexp"
	"testing"

	"radar-atc/internal/config"
	"radar-atc/internal/game/aircraft"
	"radar-atc/internal/game/command"
	"radar-atc/internal/game/conflict"
	"radar-atc/pkg/types"
)

func makeTestSim(t *testing.T, seed int64) *Simulation {
	t.Helper()
	s, err := New(Config{Settings: config.Defaults(), Rand: rand.New(rand.NewSource(seed))})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsBadSettings(t *testing.T) {
	settings := config.Defaults()
	settings.Airport = "XXXX"
	if _, err := New(Config{Settings: settings}); err == nil {
		t.Errorf("expected error for unknown airport")
	}

	settings = config.Defaults()
	settings.RadarRange = 0
	if _, err := New(Config{Settings: settings}); err == nil {
		t.Errorf("expected error for zero radar range")
	}
}

var callsignRE = regexp.MustCompile(`^(AAL|UAL|DAL|SWA|JBU)[1-9][0-9][0-9]$`)

func TestSpawnAircraft(t *testing.T) {
	s := makeTestSim(t, 1)
	r := s.RadarRange()
	points := map[types.Vec2]float64{
		types.NewVec2(0, r):  180,
		types.NewVec2(0, -r): 0,
		types.NewVec2(r, 0):  270,
		types.NewVec2(-r, 0): 90,
	}

	seen := make(map[types.Vec2]bool)
	for i := 0; i < 100; i++ {
		before := len(s.Aircrafts)
		if !s.SpawnAircraft() {
			t.Fatalf("spawn %d failed", i)
		}
		if len(s.Aircrafts) != before+1 {
			t.Fatalf("spawn %d added %d aircraft", i, len(s.Aircrafts)-before)
		}
	}

	for cs, ac := range s.Aircrafts {
		heading, ok := points[ac.Position]
		if !ok {
			t.Errorf("%s spawned at %v, not a boundary point", cs, ac.Position)
			continue
		}
		seen[ac.Position] = true
		if ac.Heading != heading || math.Abs(ac.Position.HeadingTo(types.Vec2{})-heading) > 1e-9 {
			t.Errorf("%s heading %v does not point at the origin", cs, ac.Heading)
		}
		if !callsignRE.MatchString(string(cs)) {
			t.Errorf("bad callsign %q", cs)
		}
		if ac.Altitude < 15000 || ac.Altitude > 35000 || math.Mod(ac.Altitude, 100) != 0 {
			t.Errorf("%s altitude %v", cs, ac.Altitude)
		}
		if !ac.Category.Valid() {
			t.Errorf("%s category %q", cs, ac.Category)
		}
		if ac.Speed != ac.Performance.CruiseSpeed {
			t.Errorf("%s speed %v, expected cruise", cs, ac.Speed)
		}
		if ac.Route.Len() != 1 {
			t.Errorf("%s route has %d fixes, expected 1", cs, ac.Route.Len())
		}
	}
	if len(seen) != 4 {
		t.Errorf("expected all four boundary points used, saw %d", len(seen))
	}
	if s.Stats.Spawned != 100 {
		t.Errorf("Stats.Spawned = %d", s.Stats.Spawned)
	}
}

func TestTimerSpawn(t *testing.T) {
	s := makeTestSim(t, 2)
	// 30 simulated seconds at x4 is 450 ticks
	for i := 0; i < 445; i++ {
		s.Tick(4)
	}
	if len(s.Aircrafts) != 0 {
		t.Fatalf("spawned early at t=%.2f", s.Time())
	}
	for i := 0; i < 10; i++ {
		s.Tick(4)
	}
	if len(s.Aircrafts) != 1 {
		t.Fatalf("expected one timed spawn, got %d", len(s.Aircrafts))
	}
	if s.SpawnTimer() > 1 {
		t.Errorf("spawn timer not reset: %v", s.SpawnTimer())
	}
	if math.Abs(s.NextSpawn()+s.SpawnTimer()-config.SpawnInterval) > 1e-9 {
		t.Errorf("NextSpawn() = %v with timer %v", s.NextSpawn(), s.SpawnTimer())
	}
	if math.Abs(s.Time()-455*4.0/60) > 1e-9 {
		t.Errorf("Time() = %v", s.Time())
	}
}

func TestManualSpawnKeepsTimer(t *testing.T) {
	s := makeTestSim(t, 3)
	for i := 0; i < 60; i++ {
		s.Tick(1)
	}
	timer := s.SpawnTimer()
	s.SpawnAircraft()
	if s.SpawnTimer() != timer {
		t.Errorf("manual spawn changed timer %v -> %v", timer, s.SpawnTimer())
	}
}

func TestAddRemoveSelect(t *testing.T) {
	s := makeTestSim(t, 4)
	if !s.AddAircraft("UAL482", aircraft.Heavy, types.NewVec2(1, 2), 20000, 90, 0) {
		t.Fatalf("add failed")
	}
	if s.AddAircraft("UAL482", aircraft.Small, types.NewVec2(5, 5), 30000, 0, 0) {
		t.Errorf("duplicate add succeeded")
	}
	ac, _ := s.Aircraft("UAL482")
	if ac.Category != aircraft.Heavy || ac.Position != types.NewVec2(1, 2) || ac.Altitude != 20000 {
		t.Errorf("duplicate add modified the aircraft: %+v", ac)
	}

	if s.SelectedAircraft() != nil {
		t.Errorf("nothing should be selected yet")
	}
	if s.SelectAircraft("NOPE1") {
		t.Errorf("selected a missing aircraft")
	}
	if !s.SelectAircraft("UAL482") || s.SelectedAircraft() != ac {
		t.Fatalf("select failed")
	}

	if s.RemoveAircraft("NOPE1") {
		t.Errorf("removed a missing aircraft")
	}
	if !s.RemoveAircraft("UAL482") {
		t.Fatalf("remove failed")
	}
	if s.SelectedAircraft() != nil || s.Snapshot().Selected != "" {
		t.Errorf("selection not cleared on removal")
	}
}

func TestRemovalBeyondRadar(t *testing.T) {
	s := makeTestSim(t, 5)
	limit := s.RadarRange() * config.RemovalRangeFactor
	s.AddAircraft("DAL100", aircraft.Heavy, types.NewVec2(0, limit-0.05), 20000, 0, 0)
	s.AddAircraft("DAL200", aircraft.Heavy, types.NewVec2(0, -limit+0.05), 20000, 180, 0)
	s.AddAircraft("DAL300", aircraft.Heavy, types.NewVec2(0, 0), 20000, 0, 0)
	s.SelectAircraft("DAL100")

	for i := 0; i < 60; i++ {
		s.Tick(1)
		for cs, ac := range s.Aircrafts {
			if ac.Position.Norm() > limit {
				t.Fatalf("%s still present at %v after tick", cs, ac.Position)
			}
		}
	}
	if _, ok := s.Aircraft("DAL100"); ok {
		t.Errorf("DAL100 should have been removed")
	}
	if _, ok := s.Aircraft("DAL300"); !ok {
		t.Errorf("DAL300 should still be present")
	}
	if s.SelectedAircraft() != nil {
		t.Errorf("selection should be cleared")
	}
	if s.Stats.Exited != 2 {
		t.Errorf("Stats.Exited = %d, expected 2", s.Stats.Exited)
	}
}

func TestConflictsAndScore(t *testing.T) {
	s := makeTestSim(t, 6)
	s.AddAircraft("A100", aircraft.Medium, types.NewVec2(0, 0), 20000, 0, 300)
	s.AddAircraft("B200", aircraft.Medium, types.NewVec2(3, 0), 20500, 0, 300)
	s.AddAircraft("C300", aircraft.Medium, types.NewVec2(3, 0), 22000, 0, 300)

	s.Tick(4)
	c := s.Conflicts()
	if c.Len() != 1 || !c.Has(conflict.NewPair("B200", "A100")) {
		t.Fatalf("conflicts = %v", c.Sorted())
	}
	if !s.InConflict("A100") || s.InConflict("C300") {
		t.Errorf("InConflict wrong")
	}
	if want := -100.0 / 60; math.Abs(s.Score()-want) > 1e-9 {
		t.Errorf("score %v, expected %v regardless of speed", s.Score(), want)
	}

	s.Tick(1)
	if s.Stats.ConflictEvents != 1 {
		t.Errorf("a persisting conflict counted %d times", s.Stats.ConflictEvents)
	}
	last := s.RadioLog[len(s.RadioLog)-1]
	if !last.IsUrgent || last.Callsign != "A100" {
		t.Errorf("expected urgent traffic alert, got %+v", last)
	}

	// separate them and clear one for the approach
	b, _ := s.Aircraft("B200")
	b.Altitude = 30000
	b.TargetAltitude = 30000
	a, _ := s.Aircraft("A100")
	a.ClearedForApproach = true
	before := s.Score()
	s.Tick(2)
	if s.Conflicts().Len() != 0 {
		t.Errorf("conflict should be gone")
	}
	if math.Abs(s.Score()-before-1.0/60) > 1e-9 {
		t.Errorf("approach credit %v, expected %v", s.Score()-before, 1.0/60)
	}
}

func TestConflictRecomputationIdempotent(t *testing.T) {
	s := makeTestSim(t, 7)
	for i := 0; i < 40; i++ {
		s.AddAircraft(types.Callsign(fmt.Sprintf("T%02d", i)), aircraft.Small,
			types.NewVec2(float64(i%7), float64(i/7)), 20000+float64(i%3)*400, 0, 0)
	}
	all := s.AllAircraft()
	s.CheckForConflicts(all)
	first := s.Conflicts()
	s.CheckForConflicts(all)
	if !first.Equal(s.Conflicts()) {
		t.Errorf("recomputing on unchanged aircraft changed the set")
	}
}

func TestAircraftInRange(t *testing.T) {
	s := makeTestSim(t, 8)
	s.AddAircraft("ZZZ1", aircraft.Small, types.NewVec2(3, 4), 20000, 0, 0)
	s.AddAircraft("AAA1", aircraft.Small, types.NewVec2(1, 0), 20000, 0, 0)
	s.AddAircraft("MMM1", aircraft.Small, types.NewVec2(10, 0), 20000, 0, 0)

	in := s.AircraftInRange(types.Vec2{}, 5)
	if len(in) != 2 || in[0].Callsign != "AAA1" || in[1].Callsign != "ZZZ1" {
		t.Errorf("AircraftInRange = %v", in)
	}
	if ac := s.AircraftAt(types.NewVec2(3, 3.5), 2); ac == nil || ac.Callsign != "ZZZ1" {
		t.Errorf("AircraftAt picked %v", ac)
	}
	if ac := s.AircraftAt(types.NewVec2(-20, 0), 2); ac != nil {
		t.Errorf("AircraftAt on empty space = %v", ac.Callsign)
	}
}

func TestAddWaypoint(t *testing.T) {
	s := makeTestSim(t, 9)
	if !s.AddWaypoint("ALPHA", types.NewVec2(10, 20), "") {
		t.Errorf("add failed")
	}
	if s.AddWaypoint("ALPHA", types.NewVec2(0, 0), types.WaypointFix) {
		t.Errorf("duplicate waypoint accepted")
	}
	if s.AddWaypoint("NORTH", types.NewVec2(0, 0), types.WaypointFix) {
		t.Errorf("standard fix overwritten")
	}
}

func TestAltitudeRoundTrip(t *testing.T) {
	s := makeTestSim(t, 10)
	s.AddAircraft("JBU700", aircraft.Medium, types.Vec2{}, 20000, 0, 0)
	ac, _ := s.Aircraft("JBU700")
	ac.SetTargetAltitude(25000)
	for i := 0; i < 2000 && math.Abs(ac.Altitude-25000) > 10; i++ {
		s.Tick(4)
	}
	if math.Abs(ac.Altitude-25000) > 10 {
		t.Errorf("altitude %v did not reach 25000", ac.Altitude)
	}
}

func TestOperatorCommands(t *testing.T) {
	s := makeTestSim(t, 11)
	s.AddAircraft("SWA300", aircraft.Medium, types.NewVec2(10, 10), 20000, 0, 0)
	s.AddAircraft("SWA301", aircraft.Medium, types.NewVec2(-10, -10), 20000, 0, 0)

	s.Click(types.NewVec2(10.5, 11))
	if ac := s.SelectedAircraft(); ac == nil || ac.Callsign != "SWA300" {
		t.Fatalf("click did not select SWA300")
	}

	s.Command(command.Altitude)
	s.Digit(3)
	if st := s.Snapshot(); st.Armed != "altitude" || st.Pending == nil || *st.Pending != 3000 {
		t.Errorf("snapshot armed %q pending %v", st.Armed, st.Pending)
	}
	s.Enter()
	if ac := s.SelectedAircraft(); ac.TargetAltitude != 3000 {
		t.Errorf("target altitude %v", ac.TargetAltitude)
	}

	s.Command(command.Direct)
	s.Click(types.NewVec2(-10, -10)) // on top of SWA301: direct-to wins
	if ac := s.SelectedAircraft(); ac.Callsign != "SWA300" || math.Abs(ac.TargetHeading-225) > 1e-9 {
		t.Errorf("direct-to: selected %s heading %v", ac.Callsign, ac.TargetHeading)
	}

	s.Click(types.NewVec2(30, -30))
	if s.SelectedAircraft() != nil {
		t.Errorf("click on empty radar should clear selection")
	}
	s.Click(types.NewVec2(500, 0))
	if s.SelectedAircraft() != nil {
		t.Errorf("click outside radar should be ignored")
	}

	s.CycleSelection()
	if s.SelectedAircraft().Callsign != "SWA300" {
		t.Errorf("cycle from none should pick the first callsign")
	}
	s.CycleSelection()
	s.CycleSelection()
	if s.SelectedAircraft().Callsign != "SWA300" {
		t.Errorf("cycle should wrap")
	}
}

func TestPauseAndSpeed(t *testing.T) {
	s := makeTestSim(t, 12)
	s.AddAircraft("AAL1", aircraft.Small, types.Vec2{}, 20000, 0, 0)
	s.TogglePause()
	s.Step()
	if s.Time() != 0 {
		t.Errorf("paused Step advanced time")
	}
	s.SelectAircraft("AAL1")
	s.Command(command.Approach)
	if ac, _ := s.Aircraft("AAL1"); !ac.ClearedForApproach {
		t.Errorf("commands should work while paused")
	}
	s.TogglePause()
	s.Step()
	if s.Time() == 0 {
		t.Errorf("unpaused Step did not advance")
	}

	for i := 0; i < 10; i++ {
		s.SpeedUp()
	}
	if s.Speed() != config.MaxSimulationSpeed {
		t.Errorf("speed %v, expected clamp to %v", s.Speed(), config.MaxSimulationSpeed)
	}
	for i := 0; i < 20; i++ {
		s.SlowDown()
	}
	if s.Speed() != config.MinSimulationSpeed {
		t.Errorf("speed %v, expected clamp to %v", s.Speed(), config.MinSimulationSpeed)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() State {
		s := makeTestSim(t, 99)
		for i := 0; i < 3000; i++ {
			if i%400 == 0 {
				s.SpawnAircraft()
			}
			s.Tick(4)
		}
		return s.Snapshot()
	}
	a, b := run(), run()
	if len(a.Aircraft) == 0 {
		t.Fatalf("expected traffic after the run")
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different states")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := makeTestSim(t, 13)
	s.SpawnAircraft()
	st := s.Snapshot()
	st.Aircraft[0].Altitude = -1
	st.Aircraft[0].Route.Fixes[0] = types.NewVec2(999, 999)
	st.Radio[0].Message = "changed"

	ac := s.AllAircraft()[0]
	if ac.Altitude == -1 || ac.Route.Fixes[0] == types.NewVec2(999, 999) {
		t.Errorf("snapshot aliases live aircraft")
	}
	if s.RadioLog[0].Message == "changed" {
		t.Errorf("snapshot aliases radio log")
	}
	if st.Airport != "KRST" || len(st.Waypoints) != 6 {
		t.Errorf("snapshot airport %q waypoints %d", st.Airport, len(st.Waypoints))
	}
}

func TestRadioLogBounded(t *testing.T) {
	s := makeTestSim(t, 14)
	for i := 0; i < 3*config.MaxRadioLogSize; i++ {
		s.Transmit("AAL1", "roger")
	}
	if len(s.RadioLog) != config.MaxRadioLogSize {
		t.Errorf("radio log length %d", len(s.RadioLog))
	}
}
