package airspace

import (
	"math/rand"

	"radar-atc/pkg/types"
)

type Storm struct {
	Center types.Vec2 `json:"center" msgpack:"center"`
	Radius float64    `json:"radius" msgpack:"radius"` // NM
}

// Weather is drawn once per run and does not change afterwards. Storms
// are never generated.
type Weather struct {
	WindDirection float64 `json:"wind_direction" msgpack:"wind_direction"` // degrees, from
	WindSpeed     float64 `json:"wind_speed" msgpack:"wind_speed"`         // kt
	Storms        []Storm `json:"storms" msgpack:"storms"`
}

func NewWeather(r *rand.Rand) Weather {
	return Weather{
		WindDirection: r.Float64() * 360,
		WindSpeed:     r.Float64() * 30,
	}
}
