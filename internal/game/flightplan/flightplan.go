package flightplan

import "radar-atc/pkg/types"

// Route is the ordered list of fixes filed for an aircraft. It is a
// destination hint only; nothing flies it automatically.
type Route struct {
	Fixes []types.Vec2 `json:"fixes" msgpack:"fixes"`
}

func (r *Route) Add(pos types.Vec2) {
	r.Fixes = append(r.Fixes, pos)
}

func (r *Route) Clear() {
	r.Fixes = nil
}

func (r *Route) Len() int {
	return len(r.Fixes)
}

// Next returns the first pending fix without consuming it.
func (r *Route) Next() (types.Vec2, bool) {
	if len(r.Fixes) == 0 {
		return types.Vec2{}, false
	}
	return r.Fixes[0], true
}
