package main

import (
	"math"

	"radar-atc/pkg/types"
)

// scope maps world NM (north up) onto terminal cells. A cell is about
// twice as tall as it is wide, so columns get double the rows' scale.
type scope struct {
	cx, cy    int // origin cell
	rowsPerNM float64
}

func newScope(width, height int, radarRange float64) scope {
	rows := float64(height-1) / 2 / radarRange
	cols := float64(width-1) / 2 / radarRange / 2
	return scope{
		cx:        width / 2,
		cy:        height / 2,
		rowsPerNM: math.Min(rows, cols),
	}
}

func (s scope) colsPerNM() float64 {
	return 2 * s.rowsPerNM
}

func (s scope) toCell(p types.Vec2) (int, int) {
	x := s.cx + int(math.Round(p.X*s.colsPerNM()))
	y := s.cy - int(math.Round(p.Y*s.rowsPerNM))
	return x, y
}

func (s scope) toWorld(x, y int) types.Vec2 {
	return types.NewVec2(
		float64(x-s.cx)/s.colsPerNM(),
		float64(s.cy-y)/s.rowsPerNM,
	)
}
