package simulation

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/labstack/gommon/log"

	"radar-atc/internal/config"
	"radar-atc/internal/game/aircraft"
	"radar-atc/internal/game/airspace"
	"radar-atc/internal/game/command"
	"radar-atc/internal/game/conflict"
	"radar-atc/pkg/types"
)

const maxCallsignAttempts = 16

type Stats struct {
	Spawned        int `json:"spawned" msgpack:"spawned"`
	Exited         int `json:"exited" msgpack:"exited"`
	ConflictEvents int `json:"conflict_events" msgpack:"conflict_events"`
}

type Config struct {
	Settings config.Settings
	// Rand overrides the source seeded from Settings.Seed.
	Rand *rand.Rand
}

// Simulation owns every aircraft, the airspace and all derived state. It
// is not safe for concurrent use; callers serialize access (see api.Runner).
type Simulation struct {
	Aircrafts       map[types.Callsign]*aircraft.Aircraft
	Airspace        *airspace.Airspace
	Commands        *command.Interpreter
	TickRate        float64
	GameTimeSeconds float64

	RadioLog        []RadioMessage
	maxRadioLogSize int
	Stats           Stats

	conflicts     conflict.Set
	score         float64
	weather       airspace.Weather
	selected      types.Callsign
	spawnTimer    float64
	spawnInterval float64
	paused        bool
	speed         float64
	rng           *rand.Rand
}

func New(cfg Config) (*Simulation, error) {
	settings := cfg.Settings
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		seed := settings.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	space := airspace.NewAirspace(settings.RadarRange)
	if settings.Airport != "" {
		if err := space.SetActiveAirport(settings.Airport); err != nil {
			return nil, fmt.Errorf("creating simulation: %w", err)
		}
	}

	s := &Simulation{
		Aircrafts:       make(map[types.Callsign]*aircraft.Aircraft),
		Airspace:        space,
		Commands:        command.NewInterpreter(),
		TickRate:        config.TickRate,
		maxRadioLogSize: config.MaxRadioLogSize,
		conflicts:       make(conflict.Set),
		weather:         airspace.NewWeather(rng),
		spawnInterval:   settings.SpawnInterval,
		speed:           settings.SimulationSpeed,
		rng:             rng,
	}
	log.Infof("Simulation ready: radar %.0f NM, wind %03.0f at %.0f kt", space.RadarRange, s.weather.WindDirection, s.weather.WindSpeed)
	return s, nil
}

// Tick advances the world by one fixed step scaled by speed.
func (s *Simulation) Tick(speed float64) {
	dt := 1.0 / s.TickRate
	step := dt * speed

	s.GameTimeSeconds += step

	s.spawnTimer += step
	if s.spawnTimer >= s.spawnInterval {
		s.spawnTimer = 0
		s.SpawnAircraft()
	}

	all := s.AllAircraft()
	for _, ac := range all {
		ac.Update(dt, speed)
	}

	s.CheckForConflicts(all)
	s.updateScore(dt)
	s.CleanupAircraft()
}

// Step ticks once at the current speed unless paused.
func (s *Simulation) Step() {
	if s.paused {
		return
	}
	s.Tick(s.speed)
}

func (s *Simulation) CheckForConflicts(all []*aircraft.Aircraft) {
	previous := s.conflicts
	s.conflicts = conflict.Detect(all)

	for _, p := range s.conflicts.Sorted() {
		if previous.Has(p) {
			continue
		}
		s.Stats.ConflictEvents++
		log.Warnf("CONFLICT: %s and %s", p.A, p.B)
		s.AddRadioMessage(p.A, fmt.Sprintf("traffic alert, %s", p.B), true)
	}
}

// updateScore applies penalties and credits at a fixed real-time rate,
// independent of the simulation speed.
func (s *Simulation) updateScore(dt float64) {
	s.score -= config.ConflictPenaltyPerSecond * float64(s.conflicts.Len()) * dt
	for _, ac := range s.Aircrafts {
		if ac.ClearedForApproach {
			s.score += config.ApproachCreditPerSecond * dt
		}
	}
}

func (s *Simulation) CleanupAircraft() {
	limit := s.Airspace.RadarRange * config.RemovalRangeFactor
	for _, cs := range types.SortedKeys(s.Aircrafts) {
		if s.Aircrafts[cs].Position.Norm() > limit {
			log.Infof("Aircraft %s left airspace and removed.", cs)
			s.AddRadioMessage(cs, "leaving radar coverage, good day", false)
			s.Stats.Exited++
			s.RemoveAircraft(cs)
		}
	}
}

var spawnPoints = []struct {
	name    string
	dir     types.Vec2
	heading float64
}{
	{"N", types.NewVec2(0, 1), 180},
	{"S", types.NewVec2(0, -1), 0},
	{"E", types.NewVec2(1, 0), 270},
	{"W", types.NewVec2(-1, 0), 90},
}

func (s *Simulation) randomCallsign() types.Callsign {
	code := config.AirlineCodes[s.rng.Intn(len(config.AirlineCodes))]
	num := config.FlightNumberMin + s.rng.Intn(config.FlightNumberMax-config.FlightNumberMin+1)
	return types.Callsign(fmt.Sprintf("%s%d", code, num))
}

// SpawnAircraft adds one aircraft at a random boundary point heading for
// the origin. It does not touch the spawn timer. Callsigns already in use
// are redrawn; false means every attempt collided.
func (s *Simulation) SpawnAircraft() bool {
	sp := spawnPoints[s.rng.Intn(len(spawnPoints))]
	pos := sp.dir.Scale(s.Airspace.RadarRange)

	var callsign types.Callsign
	for i := 0; i < maxCallsignAttempts; i++ {
		cs := s.randomCallsign()
		if _, taken := s.Aircrafts[cs]; !taken {
			callsign = cs
			break
		}
	}
	if callsign == "" {
		log.Warnf("Spawn skipped: no free callsign after %d attempts", maxCallsignAttempts)
		return false
	}

	category := aircraft.Categories[s.rng.Intn(len(aircraft.Categories))]
	altitude := float64(config.SpawnMinFL+s.rng.Intn(config.SpawnMaxFL-config.SpawnMinFL+1)) * 100

	s.AddAircraft(callsign, category, pos, altitude, sp.heading, 0)
	ac := s.Aircrafts[callsign]

	if names := s.Airspace.WaypointNames(); len(names) > 0 {
		wp := s.Airspace.Waypoints[names[s.rng.Intn(len(names))]]
		ac.AddWaypoint(wp.Position)
		log.Debugf("%s filed via %s", callsign, wp.Name)
	}

	s.Stats.Spawned++
	s.AddRadioMessage(callsign, fmt.Sprintf("with you at FL%03.0f", altitude/100), false)
	log.Infof("Spawned aircraft %s (%s) from %s at %v, heading %.0f, speed %.0f, altitude %.0f",
		callsign, category, sp.name, ac.Position, ac.Heading, ac.Speed, ac.Altitude)
	return true
}

// AddAircraft returns false if callsign is already present. A speed <= 0
// means the category cruise speed.
func (s *Simulation) AddAircraft(callsign types.Callsign, category aircraft.Category, pos types.Vec2, altitude, heading, speed float64) bool {
	if _, ok := s.Aircrafts[callsign]; ok {
		return false
	}
	s.Aircrafts[callsign] = aircraft.New(callsign, category, pos, altitude, heading, speed)
	return true
}

func (s *Simulation) RemoveAircraft(callsign types.Callsign) bool {
	if _, ok := s.Aircrafts[callsign]; !ok {
		return false
	}
	delete(s.Aircrafts, callsign)
	if s.selected == callsign {
		s.ClearSelection()
	}
	return true
}

func (s *Simulation) SelectAircraft(callsign types.Callsign) bool {
	if _, ok := s.Aircrafts[callsign]; !ok {
		return false
	}
	s.selected = callsign
	return true
}

func (s *Simulation) ClearSelection() {
	s.selected = ""
}

// SelectedAircraft returns nil when nothing is selected.
func (s *Simulation) SelectedAircraft() *aircraft.Aircraft {
	if s.selected == "" {
		return nil
	}
	return s.Aircrafts[s.selected]
}

func (s *Simulation) Aircraft(callsign types.Callsign) (*aircraft.Aircraft, bool) {
	ac, ok := s.Aircrafts[callsign]
	return ac, ok
}

// AllAircraft returns the live aircraft ordered by callsign.
func (s *Simulation) AllAircraft() []*aircraft.Aircraft {
	all := make([]*aircraft.Aircraft, 0, len(s.Aircrafts))
	for _, cs := range types.SortedKeys(s.Aircrafts) {
		all = append(all, s.Aircrafts[cs])
	}
	return all
}

func (s *Simulation) AddWaypoint(name string, pos types.Vec2, kind types.WaypointKind) bool {
	return s.Airspace.AddWaypoint(name, pos, kind)
}

// AircraftInRange returns the aircraft within radius NM of point, ordered
// by callsign.
func (s *Simulation) AircraftInRange(point types.Vec2, radius float64) []*aircraft.Aircraft {
	var in []*aircraft.Aircraft
	for _, ac := range s.AllAircraft() {
		if ac.DistanceTo(point) <= radius {
			in = append(in, ac)
		}
	}
	return in
}

// AircraftAt returns the closest aircraft within radius of point, or nil.
func (s *Simulation) AircraftAt(point types.Vec2, radius float64) *aircraft.Aircraft {
	in := s.AircraftInRange(point, radius)
	sort.SliceStable(in, func(i, j int) bool {
		return in[i].DistanceTo(point) < in[j].DistanceTo(point)
	})
	if len(in) == 0 {
		return nil
	}
	return in[0]
}

func (s *Simulation) Conflicts() conflict.Set {
	c := make(conflict.Set, s.conflicts.Len())
	for p := range s.conflicts {
		c.Add(p)
	}
	return c
}

func (s *Simulation) InConflict(callsign types.Callsign) bool {
	for p := range s.conflicts {
		if p.Contains(callsign) {
			return true
		}
	}
	return false
}

// PredictConflicts returns pairs that would lose separation after
// lookahead seconds on their present course, excluding current conflicts.
func (s *Simulation) PredictConflicts(lookahead float64) []conflict.Prediction {
	return conflict.Predict(s.AllAircraft(), s.conflicts, lookahead)
}

func (s *Simulation) Score() float64 {
	return s.score
}

func (s *Simulation) Time() float64 {
	return s.GameTimeSeconds
}

func (s *Simulation) Weather() airspace.Weather {
	return s.weather
}

func (s *Simulation) RadarRange() float64 {
	return s.Airspace.RadarRange
}

func (s *Simulation) SpawnTimer() float64 {
	return s.spawnTimer
}

// NextSpawn returns the simulated seconds until the timer spawns again.
func (s *Simulation) NextSpawn() float64 {
	return s.spawnInterval - s.spawnTimer
}

func (s *Simulation) Paused() bool {
	return s.paused
}

func (s *Simulation) TogglePause() {
	s.paused = !s.paused
	log.Infof("Simulation paused: %v", s.paused)
}

func (s *Simulation) Speed() float64 {
	return s.speed
}

func (s *Simulation) SetSpeed(speed float64) {
	s.speed = types.Clamp(speed, config.MinSimulationSpeed, config.MaxSimulationSpeed)
}

func (s *Simulation) SpeedUp() {
	s.SetSpeed(s.speed * config.SimulationSpeedStep)
}

func (s *Simulation) SlowDown() {
	s.SetSpeed(s.speed / config.SimulationSpeedStep)
}
