package command

import (
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"

	"radar-atc/internal/game/aircraft"
	"radar-atc/pkg/types"
)

type Kind int

const (
	None Kind = iota
	Heading
	Altitude
	Speed
	Approach
	Hold
	Direct
	Emergency
)

var kindNames = map[Kind]string{
	None:      "none",
	Heading:   "heading",
	Altitude:  "altitude",
	Speed:     "speed",
	Approach:  "approach",
	Hold:      "hold",
	Direct:    "direct",
	Emergency: "emergency",
}

var kindLabels = map[Kind]string{
	Heading:   "Set Heading",
	Altitude:  "Set Altitude",
	Speed:     "Set Speed",
	Approach:  "Clear Approach",
	Hold:      "Hold Pattern",
	Direct:    "Direct To",
	Emergency: "Emergency",
}

// Kinds returns the operator commands in display order.
func Kinds() []Kind {
	return []Kind{Heading, Altitude, Speed, Approach, Hold, Direct, Emergency}
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "none"
}

func (k Kind) Label() string {
	return kindLabels[k]
}

// ParseKind is case-insensitive; anything unknown is None.
func ParseKind(s string) Kind {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}
	return None
}

// numeric reports whether k waits for digit entry.
func (k Kind) numeric() bool {
	return k == Heading || k == Altitude || k == Speed
}

// World is what the interpreter needs from the simulation.
type World interface {
	RadarRange() float64
	Transmit(callsign types.Callsign, message string)
}

// Interpreter turns operator intents into target changes on the selected
// aircraft. At most one numeric or direct-to mode is armed at a time.
type Interpreter struct {
	armed      Kind
	pending    float64
	hasPending bool
}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

func (in *Interpreter) Armed() Kind {
	return in.armed
}

func (in *Interpreter) IsArmed(k Kind) bool {
	return k != None && in.armed == k
}

// Pending returns the value that Enter would apply.
func (in *Interpreter) Pending() (float64, bool) {
	return in.pending, in.hasPending
}

func (in *Interpreter) arm(k Kind) {
	in.armed = k
	in.pending = 0
	in.hasPending = false
}

// Dispatch handles a command button. Without an aircraft it does nothing.
func (in *Interpreter) Dispatch(k Kind, ac *aircraft.Aircraft, w World) {
	if ac == nil {
		return
	}

	switch k {
	case Approach:
		ac.ToggleApproach()
		if ac.ClearedForApproach {
			w.Transmit(ac.Callsign, "cleared for the approach")
		} else {
			w.Transmit(ac.Callsign, "approach clearance cancelled")
		}
	case Hold:
		ac.ToggleHold()
		if ac.Holding {
			w.Transmit(ac.Callsign, "holding as published")
		} else {
			w.Transmit(ac.Callsign, "leaving the hold")
		}
	case Heading, Altitude, Speed, Direct:
		in.arm(k)
		log.Debugf("%s: %s armed", ac.Callsign, k)
	case Emergency:
		// No defined effect yet.
		log.Debugf("%s: emergency requested", ac.Callsign)
	default:
		log.Debugf("ignoring command kind %d", int(k))
	}
}

// Digit records a keystroke for the armed numeric mode. Each digit
// replaces the pending value rather than appending to it.
func (in *Interpreter) Digit(d int, ac *aircraft.Aircraft) {
	if !in.armed.numeric() || d < 0 || d > 9 {
		return
	}
	if ac == nil {
		in.Cancel()
		return
	}

	switch in.armed {
	case Heading:
		in.pending = float64(d * 10)
	case Altitude:
		in.pending = float64(d * 1000)
	case Speed:
		in.pending = float64(d * 10)
	}
	in.hasPending = true
}

// Enter applies the pending value, if any, and disarms.
func (in *Interpreter) Enter(ac *aircraft.Aircraft, w World) {
	defer in.Cancel()
	if ac == nil || !in.hasPending {
		return
	}

	switch in.armed {
	case Heading:
		ac.SetTargetHeading(in.pending)
		w.Transmit(ac.Callsign, fmt.Sprintf("fly heading %03.0f", ac.TargetHeading))
	case Altitude:
		ac.SetTargetAltitude(in.pending)
		w.Transmit(ac.Callsign, fmt.Sprintf("%s %.0f", climbOrDescend(ac), ac.TargetAltitude))
	case Speed:
		ac.SetTargetSpeed(in.pending)
		w.Transmit(ac.Callsign, fmt.Sprintf("speed %.0f", ac.TargetSpeed))
	}
}

func climbOrDescend(ac *aircraft.Aircraft) string {
	switch {
	case ac.TargetAltitude > ac.Altitude:
		return "climb and maintain"
	case ac.TargetAltitude < ac.Altitude:
		return "descend and maintain"
	default:
		return "maintain"
	}
}

func (in *Interpreter) Cancel() {
	in.arm(None)
}

// Point handles a position pick in world coordinates. It returns true if
// the pick was consumed by an armed direct-to.
func (in *Interpreter) Point(pos types.Vec2, ac *aircraft.Aircraft, w World) bool {
	if in.armed != Direct {
		return false
	}
	if ac == nil {
		in.Cancel()
		return false
	}
	if pos.Norm() > w.RadarRange() {
		return false
	}

	ac.SetTargetHeading(ac.Position.HeadingTo(pos))
	w.Transmit(ac.Callsign, fmt.Sprintf("proceed direct, heading %03.0f", ac.TargetHeading))
	in.Cancel()
	return true
}
