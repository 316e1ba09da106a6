package tilemenu

import "math"

// cornerSegments is the number of straight segments used per rounded corner.
const cornerSegments = 8

// ringDirections holds the unit step from the center to each ring slot for a
// right-handed menu, scaled as (dx in units of side+gap, dy in units of the
// ring radius). Slot 0 is directly below the center and the slots advance
// clockwise on screen in 60° steps, ending at the lower right.
var ringDirections = [TilesPerPage]Vec2{
	{0, 1},
	{-1, 0.5},
	{-1, -0.5},
	{0, -1},
	{1, -0.5},
	{1, 0.5},
}

// Layout computes tile frames for one Config. It is a pure value: every
// method is a function of the config and the center point passed in.
type Layout struct {
	side   float64
	gap    float64
	radius float64 // center-to-slot distance
	corner float64
	flip   float64 // 1 for right-handed, -1 rotates the ring half a turn
}

// NewLayout validates cfg and returns its layout.
func NewLayout(cfg Config) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	return newLayout(cfg), nil
}

func newLayout(cfg Config) Layout {
	side := float64(cfg.TileSide)
	gap := float64(cfg.TileGap)
	l := Layout{
		side: side,
		gap:  gap,
		// Pointy-top hexagon: the horizontal distance between the side
		// columns and the center column is exactly side+gap.
		radius: (side + gap) * 2 / math.Sqrt(3),
		corner: cfg.CornerRadius,
		flip:   1,
	}
	if !cfg.RightHanded {
		l.flip = -1
	}
	return l
}

// TileSide returns the edge length of every tile.
func (l Layout) TileSide() float64 { return l.side }

// SlotOffset returns the vector from the menu center to the center of slot.
// The center slot, and any slot outside the ring, has a zero offset.
func (l Layout) SlotOffset(slot Slot) Vec2 {
	if !slot.IsRing() {
		return Vec2{}
	}
	d := ringDirections[slot]
	return Vec2{
		X: l.flip * d.X * (l.side + l.gap),
		Y: l.flip * d.Y * l.radius,
	}
}

// TileFrame returns the frame of a ring slot for a menu centered on center.
// Any non-ring slot yields the center frame.
func (l Layout) TileFrame(center Vec2, slot Slot) Rect {
	return RectAround(center.Add(l.SlotOffset(slot)), l.side, l.side)
}

// CenterFrame returns the frame of the close/page button.
func (l Layout) CenterFrame(center Vec2) Rect {
	return RectAround(center, l.side, l.side)
}

// Frames returns all seven frames indexed by Slot.
func (l Layout) Frames(center Vec2) [TilesPerPage + 1]Rect {
	var frames [TilesPerPage + 1]Rect
	for s := Slot(0); s < TilesPerPage; s++ {
		frames[s] = l.TileFrame(center, s)
	}
	frames[SlotCenter] = l.CenterFrame(center)
	return frames
}

// BezelRect returns the union of every frame, padded by the tile gap. The
// bezel is symmetric, so its midpoint is always center.
func (l Layout) BezelRect(center Vec2) Rect {
	frames := l.Frames(center)
	r := frames[0]
	for _, f := range frames[1:] {
		r = r.Union(f)
	}
	return r.Inset(-l.gap)
}

// BezelSize returns the width and height of the bezel.
func (l Layout) BezelSize() (w, h float64) {
	r := l.BezelRect(Vec2{})
	return r.Width, r.Height
}

// BezelPath returns the outline of the bezel as a closed, clockwise polygon
// with rounded corners.
func (l Layout) BezelPath(center Vec2) []Vec2 {
	return roundedRectPath(l.BezelRect(center), l.corner, cornerSegments)
}

// SlotAt returns the slot whose frame contains (x, y).
func (l Layout) SlotAt(center Vec2, x, y float64) (Slot, bool) {
	if l.CenterFrame(center).Contains(x, y) {
		return SlotCenter, true
	}
	for s := Slot(0); s < TilesPerPage; s++ {
		if l.TileFrame(center, s).Contains(x, y) {
			return s, true
		}
	}
	return 0, false
}

// roundedRectPath builds a convex polygon tracing r with corners of the given
// radius. The radius is clamped to half the shorter side. A zero radius
// yields the four corners.
func roundedRectPath(r Rect, radius float64, segs int) []Vec2 {
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	if radius <= 0 {
		return []Vec2{
			{r.X, r.Y},
			{r.MaxX(), r.Y},
			{r.MaxX(), r.MaxY()},
			{r.X, r.MaxY()},
		}
	}

	// Arc centers in clockwise order from the top-left, with the start angle
	// of each quarter turn.
	corners := [4]struct {
		cx, cy, start float64
	}{
		{r.X + radius, r.Y + radius, math.Pi},
		{r.MaxX() - radius, r.Y + radius, 1.5 * math.Pi},
		{r.MaxX() - radius, r.MaxY() - radius, 0},
		{r.X + radius, r.MaxY() - radius, 0.5 * math.Pi},
	}

	pts := make([]Vec2, 0, 4*(segs+1))
	for _, c := range corners {
		for i := 0; i <= segs; i++ {
			a := c.start + float64(i)/float64(segs)*(math.Pi/2)
			sin, cos := math.Sincos(a)
			pts = append(pts, Vec2{c.cx + cos*radius, c.cy + sin*radius})
		}
	}
	return pts
}
