package main

import (
	"math"

	"radar-atc/pkg/types"
)

const (
	minZoom = 0.5
	maxZoom = 4.0
)

// Camera maps world NM (north up) onto the radar viewport in pixels.
type Camera struct {
	X, Y                 float64 // world point at the viewport centre
	PanStartX, PanStartY int
	Zoom                 float64

	baseScale             float64 // pixels per NM at zoom 1
	viewWidth, viewHeight int
}

// NewCamera fits the whole radar range into the viewport.
func NewCamera(viewWidth, viewHeight int, radarRange float64) *Camera {
	fit := float64(min(viewWidth, viewHeight)) * 0.45
	return &Camera{
		Zoom:       1,
		baseScale:  fit / radarRange,
		viewWidth:  viewWidth,
		viewHeight: viewHeight,
	}
}

func (c *Camera) Scale() float64 {
	return c.baseScale * c.Zoom
}

func (c *Camera) ScreenToWorld(sx, sy float64) types.Vec2 {
	return types.NewVec2(
		(sx-float64(c.viewWidth)/2)/c.Scale()+c.X,
		(float64(c.viewHeight)/2-sy)/c.Scale()+c.Y,
	)
}

func (c *Camera) WorldToScreen(p types.Vec2) (sx, sy float64) {
	sx = (p.X-c.X)*c.Scale() + float64(c.viewWidth)/2
	sy = float64(c.viewHeight)/2 - (p.Y-c.Y)*c.Scale()
	return
}

// ZoomAt changes the zoom keeping the world point under the cursor fixed.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	before := c.ScreenToWorld(sx, sy)
	c.Zoom = math.Max(minZoom, math.Min(maxZoom, c.Zoom*factor))
	after := c.ScreenToWorld(sx, sy)
	c.X -= after.X - before.X
	c.Y -= after.Y - before.Y
}

// Pan moves the view by a screen-space drag.
func (c *Camera) Pan(dx, dy int) {
	c.X -= float64(dx) / c.Scale()
	c.Y += float64(dy) / c.Scale()
}
