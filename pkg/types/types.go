package types

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

type Callsign string

// Vec2 is a position or displacement in nautical miles. +Y is north.
type Vec2 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (v1 Vec2) Add(v2 Vec2) Vec2 {
	return Vec2{v1.X + v2.X, v1.Y + v2.Y}
}

func (v1 Vec2) Sub(v2 Vec2) Vec2 {
	return Vec2{v1.X - v2.X, v1.Y - v2.Y}
}

func (v1 Vec2) Scale(s float64) Vec2 {
	return Vec2{v1.X * s, v1.Y * s}
}

func (v1 Vec2) Norm() float64 {
	return math.Sqrt(v1.X*v1.X + v1.Y*v1.Y)
}

func (v1 Vec2) DistanceTo(v2 Vec2) float64 {
	return v1.Sub(v2).Norm()
}

// HeadingTo returns the bearing from v1 to v2 in degrees, 0 is north and 90 is east.
func (v1 Vec2) HeadingTo(v2 Vec2) float64 {
	d := v2.Sub(v1)
	return NormalizeHeading(math.Atan2(d.X, d.Y) * 180 / math.Pi)
}

type WaypointKind string

const (
	WaypointFix     WaypointKind = "fix"
	WaypointAirport WaypointKind = "airport"
	WaypointRunway  WaypointKind = "runway"
)

type Waypoint struct {
	Name     string       `json:"name" msgpack:"name"`
	Position Vec2         `json:"position" msgpack:"position"`
	Kind     WaypointKind `json:"kind" msgpack:"kind"`
}

// NormalizeHeading maps h into [0,360).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		// -tiny + 360 rounds up to 360
		h = 0
	}
	return h
}

// HeadingDifference returns the signed shortest turn from current to
// target, in (-180,180].
func HeadingDifference(current, target float64) float64 {
	diff := math.Mod(target-current, 360)
	if diff > 180 {
		diff -= 360
	} else if diff <= -180 {
		diff += 360
	}
	return diff
}

func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
