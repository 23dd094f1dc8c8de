package aircraft

import (
	"math"

	"radar-atc/internal/config"
	"radar-atc/internal/game/flightplan"
	"radar-atc/pkg/types"
)

type Status int

const (
	CRUISE Status = iota
	CLIMB
	DESCEND
	HOLDING
	APPROACH
)

var StatusStringMap = map[Status]string{
	CRUISE:   "CRUISE",
	CLIMB:    "CLIMB",
	DESCEND:  "DESCEND",
	HOLDING:  "HOLDING",
	APPROACH: "APPROACH",
}

func (s Status) String() string {
	return StatusStringMap[s]
}

const (
	altitudeDeadband = 10.0 // ft
	speedDeadband    = 1.0  // kt
	headingDeadband  = 0.5  // deg
)

type Aircraft struct {
	Callsign types.Callsign `json:"callsign" msgpack:"callsign"`
	Category Category       `json:"category" msgpack:"category"`

	Position     types.Vec2 `json:"position" msgpack:"position"`
	Altitude     float64    `json:"altitude" msgpack:"altitude"`
	Heading      float64    `json:"heading" msgpack:"heading"`
	Speed        float64    `json:"speed" msgpack:"speed"`
	VerticalRate float64    `json:"vertical_rate" msgpack:"vertical_rate"` // ft/min, last update

	TargetAltitude float64 `json:"target_altitude" msgpack:"target_altitude"`
	TargetHeading  float64 `json:"target_heading" msgpack:"target_heading"`
	TargetSpeed    float64 `json:"target_speed" msgpack:"target_speed"`

	Performance Performance `json:"performance" msgpack:"performance"`

	ClearedForApproach bool `json:"cleared_for_approach" msgpack:"cleared_for_approach"`
	Holding            bool `json:"holding" msgpack:"holding"`

	Route flightplan.Route `json:"route" msgpack:"route"`
}

// New creates an aircraft flying straight and level. A speed <= 0 means
// the category cruise speed.
func New(callsign types.Callsign, category Category, pos types.Vec2, altitude, heading, speed float64) *Aircraft {
	perf := category.Performance()
	if speed <= 0 {
		speed = perf.CruiseSpeed
	}
	speed = types.Clamp(speed, config.MinSpeed, perf.CruiseSpeed)
	altitude = types.Clamp(altitude, config.MinAltitude, config.MaxAltitude)
	heading = types.NormalizeHeading(heading)

	return &Aircraft{
		Callsign:       callsign,
		Category:       category,
		Position:       pos,
		Altitude:       altitude,
		Heading:        heading,
		Speed:          speed,
		TargetAltitude: altitude,
		TargetHeading:  heading,
		TargetSpeed:    speed,
		Performance:    perf,
	}
}

// Update advances the aircraft by dt*speedMultiplier simulated seconds.
func (ac *Aircraft) Update(dt, speedMultiplier float64) {
	dt *= speedMultiplier

	ac.VerticalRate = 0
	if diff := ac.TargetAltitude - ac.Altitude; math.Abs(diff) > altitudeDeadband {
		prev := ac.Altitude
		if diff > 0 {
			ac.Altitude = math.Min(ac.Altitude+ac.Performance.ClimbRate*dt/60, ac.TargetAltitude)
		} else {
			ac.Altitude = math.Max(ac.Altitude-ac.Performance.DescentRate*dt/60, ac.TargetAltitude)
		}
		if dt > 0 {
			ac.VerticalRate = (ac.Altitude - prev) / dt * 60
		}
	}

	if diff := ac.TargetSpeed - ac.Speed; math.Abs(diff) > speedDeadband {
		step := math.Min(math.Abs(diff), ac.Performance.Acceleration*dt)
		ac.Speed += math.Copysign(step, diff)
	}

	if diff := types.HeadingDifference(ac.Heading, ac.TargetHeading); math.Abs(diff) > headingDeadband {
		turn := math.Min(math.Abs(diff), ac.Performance.MaxTurnRate*dt)
		ac.Heading = types.NormalizeHeading(ac.Heading + math.Copysign(turn, diff))
	}

	radians := ac.Heading * math.Pi / 180.0
	nmPerSec := ac.Speed / 3600.0
	ac.Position.X += nmPerSec * math.Sin(radians) * dt
	ac.Position.Y += nmPerSec * math.Cos(radians) * dt
}

func (ac *Aircraft) SetTargetAltitude(alt float64) {
	ac.TargetAltitude = types.Clamp(alt, config.MinAltitude, config.MaxAltitude)
}

func (ac *Aircraft) SetTargetHeading(h float64) {
	ac.TargetHeading = types.NormalizeHeading(h)
}

func (ac *Aircraft) SetTargetSpeed(s float64) {
	ac.TargetSpeed = types.Clamp(s, config.MinSpeed, ac.Performance.CruiseSpeed)
}

func (ac *Aircraft) AddWaypoint(pos types.Vec2) {
	ac.Route.Add(pos)
}

func (ac *Aircraft) ClearWaypoints() {
	ac.Route.Clear()
}

func (ac *Aircraft) ToggleApproach() {
	ac.ClearedForApproach = !ac.ClearedForApproach
}

func (ac *Aircraft) ToggleHold() {
	ac.Holding = !ac.Holding
}

func (ac *Aircraft) DistanceTo(p types.Vec2) float64 {
	return ac.Position.DistanceTo(p)
}

// IsInConflictWith reports whether both separation minima are violated at
// once. Either one alone is not a conflict.
func (ac *Aircraft) IsInConflictWith(other *Aircraft, horizontalMin, verticalMin float64) bool {
	return ac.DistanceTo(other.Position) < horizontalMin &&
		math.Abs(ac.Altitude-other.Altitude) < verticalMin
}

func (ac *Aircraft) Status() Status {
	switch {
	case ac.Holding:
		return HOLDING
	case ac.ClearedForApproach:
		return APPROACH
	case ac.TargetAltitude-ac.Altitude > altitudeDeadband:
		return CLIMB
	case ac.Altitude-ac.TargetAltitude > altitudeDeadband:
		return DESCEND
	default:
		return CRUISE
	}
}
