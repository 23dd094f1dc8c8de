package conflict

import (
	"math"
	"sort"

	"radar-atc/internal/config"
	"radar-atc/internal/game/aircraft"
	"radar-atc/pkg/types"
)

const (
	MIN_HORIZONTAL_SEPARATION = config.MinHorizontalSeparation
	MIN_VERTICAL_SEPARATION   = config.MinVerticalSeparation
)

// Pair is an unordered pair of callsigns, stored with A <= B.
type Pair struct {
	A types.Callsign `json:"a" msgpack:"a"`
	B types.Callsign `json:"b" msgpack:"b"`
}

func NewPair(a, b types.Callsign) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

func (p Pair) Contains(cs types.Callsign) bool {
	return p.A == cs || p.B == cs
}

type Set map[Pair]struct{}

func (s Set) Add(p Pair) {
	s[p] = struct{}{}
}

func (s Set) Has(p Pair) bool {
	_, ok := s[p]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for p := range s {
		if !o.Has(p) {
			return false
		}
	}
	return true
}

// Sorted returns the pairs ordered by (A, B).
func (s Set) Sorted() []Pair {
	pairs := make([]Pair, 0, len(s))
	for p := range s {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

func CheckSeparation(ac1, ac2 *aircraft.Aircraft) bool {
	return ac1.IsInConflictWith(ac2, MIN_HORIZONTAL_SEPARATION, MIN_VERTICAL_SEPARATION)
}

// Detect compares every pair once and returns those currently losing
// separation.
func Detect(all []*aircraft.Aircraft) Set {
	set := make(Set)
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if CheckSeparation(all[i], all[j]) {
				set.Add(NewPair(all[i].Callsign, all[j].Callsign))
			}
		}
	}
	return set
}

// Project returns where ac will be after futureTimeSeconds on its current
// heading, speed and vertical rate.
func Project(ac *aircraft.Aircraft, futureTimeSeconds float64) (types.Vec2, float64) {
	// Simple linear projection (ignores turns and level-offs mid-projection)
	radians := ac.Heading * math.Pi / 180.0
	nm := ac.Speed / 3600.0 * futureTimeSeconds
	pos := ac.Position.Add(types.NewVec2(nm*math.Sin(radians), nm*math.Cos(radians)))

	alt := ac.Altitude + ac.VerticalRate*futureTimeSeconds/60.0
	alt = types.Clamp(alt, config.MinAltitude, config.MaxAltitude)
	return pos, alt
}

// PredictConflict projects both aircraft and checks separation at the
// projected time.
// Returns: (isConflict, projectedPos1, projectedPos2)
func PredictConflict(ac1, ac2 *aircraft.Aircraft, futureTimeSeconds float64) (bool, types.Vec2, types.Vec2) {
	pos1, alt1 := Project(ac1, futureTimeSeconds)
	pos2, alt2 := Project(ac2, futureTimeSeconds)

	if math.Abs(alt1-alt2) < MIN_VERTICAL_SEPARATION && pos1.DistanceTo(pos2) < MIN_HORIZONTAL_SEPARATION {
		return true, pos1, pos2
	}
	return false, types.Vec2{}, types.Vec2{}
}

// Prediction is a pair expected to lose separation, with the projected
// positions of each aircraft.
type Prediction struct {
	Pair Pair
	PosA types.Vec2
	PosB types.Vec2
}

// Predict runs PredictConflict over every pair that is not already in
// current.
func Predict(all []*aircraft.Aircraft, current Set, futureTimeSeconds float64) []Prediction {
	var preds []Prediction
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			p := NewPair(all[i].Callsign, all[j].Callsign)
			if current.Has(p) {
				continue
			}
			if ok, pi, pj := PredictConflict(all[i], all[j], futureTimeSeconds); ok {
				pred := Prediction{Pair: p, PosA: pi, PosB: pj}
				if p.A != all[i].Callsign {
					pred.PosA, pred.PosB = pj, pi
				}
				preds = append(preds, pred)
			}
		}
	}
	return preds
}
