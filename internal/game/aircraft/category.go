package aircraft

type Category string

const (
	Small  Category = "small"
	Medium Category = "medium"
	Heavy  Category = "heavy"
)

var Categories = []Category{Small, Medium, Heavy}

// Performance holds the per-category constants fixed at construction.
type Performance struct {
	MaxTurnRate  float64 `json:"max_turn_rate" msgpack:"max_turn_rate"` // deg/s
	Acceleration float64 `json:"acceleration" msgpack:"acceleration"`   // kt/s
	ClimbRate    float64 `json:"climb_rate" msgpack:"climb_rate"`       // ft/min
	DescentRate  float64 `json:"descent_rate" msgpack:"descent_rate"`   // ft/min
	CruiseSpeed  float64 `json:"cruise_speed" msgpack:"cruise_speed"`   // kt, also the speed ceiling
}

var performanceTable = map[Category]Performance{
	Small:  {MaxTurnRate: 3, Acceleration: 2, ClimbRate: 2000, DescentRate: 1500, CruiseSpeed: 250},
	Medium: {MaxTurnRate: 3, Acceleration: 2, ClimbRate: 2500, DescentRate: 2000, CruiseSpeed: 350},
	Heavy:  {MaxTurnRate: 3, Acceleration: 2, ClimbRate: 2000, DescentRate: 1500, CruiseSpeed: 450},
}

// Performance returns the constants for c; unknown categories fly like
// medium aircraft.
func (c Category) Performance() Performance {
	if p, ok := performanceTable[c]; ok {
		return p
	}
	return performanceTable[Medium]
}

func (c Category) Valid() bool {
	_, ok := performanceTable[c]
	return ok
}
