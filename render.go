package tilemenu

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	shadowOffset   = 3.0
	shadowAlpha    = 0.35
	imageInsetFrac = 0.18 // tile image inset, as a fraction of the tile side
	debugGlyphW    = 6    // ebitenutil debug font cell size
	debugGlyphH    = 16
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solidSource returns a 1x1 white source image for untextured triangles. It
// is cut from the middle of a 3x3 image so sampling never bleeds an edge.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// nrgba converts c to a straight-alpha color with its alpha scaled by alpha.
func (c Color) nrgba(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A * alpha),
	}
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// scaleAbout returns p moved toward (or away from) c by factor s.
func scaleAbout(p, c Vec2, s float64) Vec2 {
	return Vec2{c.X + (p.X-c.X)*s, c.Y + (p.Y-c.Y)*s}
}

func scaleRectAbout(r Rect, c Vec2, s float64) Rect {
	o := scaleAbout(Vec2{r.X, r.Y}, c, s)
	return Rect{o.X, o.Y, r.Width * s, r.Height * s}
}

// polygonFan builds fan-triangulated vertices for a convex polygon. Vertex
// colors blend from top to bottom across the polygon's vertical extent.
func polygonFan(points []Vec2, top, bottom Color, alpha float64) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	span := maxY - minY

	verts := make([]ebiten.Vertex, n)
	for i, p := range points {
		t := 0.0
		if span > 0 {
			t = (p.Y - minY) / span
		}
		c := top.lerp(bottom, t)
		verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R),
			ColorG: float32(c.G),
			ColorB: float32(c.B),
			ColorA: float32(c.A * alpha),
		}
	}

	inds := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		inds = append(inds, 0, uint16(i), uint16(i+1))
	}
	return verts, inds
}

func fillPolygon(dst *ebiten.Image, points []Vec2, top, bottom Color, alpha float64) {
	verts, inds := polygonFan(points, top, bottom, alpha)
	if verts == nil {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	}
	dst.DrawTriangles(verts, inds, solidSource(), op)
}

func offsetPath(points []Vec2, dx, dy float64) []Vec2 {
	out := make([]Vec2, len(points))
	for i, p := range points {
		out[i] = Vec2{p.X + dx, p.Y + dy}
	}
	return out
}

// drawImageFit draws img scaled down or up to fit inside r, centered.
func drawImageFit(dst, img *ebiten.Image, r Rect, alpha float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	scale := min(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		r.X+(r.Width-float64(b.Dx())*scale)/2,
		r.Y+(r.Height-float64(b.Dy())*scale)/2,
	)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// Draw renders the menu onto dst, including the tail of a hide animation
// after Dismiss. It draws nothing once the menu is fully hidden.
func (m *Menu) Draw(dst *ebiten.Image) {
	look := &m.look
	if !look.drawn || look.alpha <= 0 {
		return
	}
	c := look.center
	s := look.scale
	alpha := look.alpha
	cfg := &m.cfg
	shadow := Color{0, 0, 0, shadowAlpha}

	bezelRect := scaleRectAbout(m.layout.BezelRect(c), c, s)
	bezel := roundedRectPath(bezelRect, cfg.CornerRadius*s, cornerSegments)
	if cfg.ShadowsEnabled {
		fillPolygon(dst, offsetPath(bezel, 0, shadowOffset*s), shadow, shadow, alpha)
	}
	fillPolygon(dst, bezel, cfg.BezelColor, cfg.BezelColor, alpha)

	for slot := Slot(0); slot < TilesPerPage; slot++ {
		idx, ok := m.tileIndexOnPage(look.page, slot)
		if !ok {
			continue
		}
		frame := m.layout.TileFrame(c, slot)
		frame = scaleRectAbout(frame, frame.Center(), look.tiles[slot])
		frame = scaleRectAbout(frame, c, s)
		if frame.Width <= 0 {
			continue
		}
		m.drawTile(dst, m.delegate.Tile(m, idx), frame, m.visible && m.selected == slot, alpha)
	}

	if cfg.CloseButtonVisible {
		frame := scaleRectAbout(m.layout.CenterFrame(c), c, s)
		m.drawCenterButton(dst, frame, m.visible && m.selected == SlotCenter, alpha)
	}
}

func (m *Menu) drawTile(dst *ebiten.Image, tile Tile, frame Rect, selected bool, alpha float64) {
	cfg := &m.cfg
	radius := cfg.CornerRadius * frame.Width / m.layout.TileSide()
	path := roundedRectPath(frame, radius, cornerSegments)

	if cfg.ShadowsEnabled {
		shadow := Color{0, 0, 0, shadowAlpha}
		fillPolygon(dst, offsetPath(path, 0, shadowOffset/2), shadow, shadow, alpha)
	}
	if selected && cfg.SelectionBorderWidth > 0 {
		bw := float64(cfg.SelectionBorderWidth)
		ring := roundedRectPath(frame.Inset(-bw), radius+bw, cornerSegments)
		fillPolygon(dst, ring, cfg.SelectionTopColor, cfg.SelectionBottomColor, alpha)
	}

	top, bottom := cfg.TileTopColor, cfg.TileBottomColor
	if tile.Background != nil {
		top, bottom = *tile.Background, *tile.Background
	}
	fillPolygon(dst, path, top, bottom, alpha)

	if tile.Image != nil {
		drawImageFit(dst, tile.Image, frame.Inset(frame.Width*imageInsetFrac), alpha)
	}

	if tile.Title == "" {
		return
	}
	if m.font != nil {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignEnd
		op.GeoM.Translate(frame.X+frame.Width/2, frame.MaxY()-4)
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(dst, tile.Title, m.font, op)
		return
	}
	if tile.Image == nil {
		x := frame.X + (frame.Width-float64(len(tile.Title)*debugGlyphW))/2
		y := frame.Y + (frame.Height-debugGlyphH)/2
		ebitenutil.DebugPrintAt(dst, tile.Title, int(x), int(y))
	}
}

// centerButtonImage picks the configured image for the center button, or nil
// when the drawn glyph should be used.
func (m *Menu) centerButtonImage(selected bool) *ebiten.Image {
	if m.PageCount() > 1 {
		return m.cfg.PageButtonImage
	}
	if selected && m.cfg.SelectedCloseButtonImage != nil {
		return m.cfg.SelectedCloseButtonImage
	}
	return m.cfg.CloseButtonImage
}

// drawCenterButton draws the configured button image, falling back to an "X"
// for a single page menu and "..." when the button pages forward.
func (m *Menu) drawCenterButton(dst *ebiten.Image, frame Rect, selected bool, alpha float64) {
	if img := m.centerButtonImage(selected); img != nil {
		drawImageFit(dst, img, frame, alpha)
		return
	}
	c := frame.Center()
	r := frame.Width * 0.3
	fill := Color{0.1, 0.1, 0.1, 0.85}
	if selected {
		fill = Color{0.35, 0.35, 0.35, 0.95}
	}
	fg := ColorWhite.nrgba(alpha)
	cx, cy := float32(c.X), float32(c.Y)

	vector.DrawFilledCircle(dst, cx, cy, float32(r), fill.nrgba(alpha), true)
	vector.StrokeCircle(dst, cx, cy, float32(r), 2, fg, true)

	if m.PageCount() > 1 {
		dot := float32(r * 0.14)
		gap := float32(r * 0.45)
		for i := -1; i <= 1; i++ {
			vector.DrawFilledCircle(dst, cx+float32(i)*gap, cy, dot, fg, true)
		}
		return
	}
	d := float32(r * 0.45)
	vector.StrokeLine(dst, cx-d, cy-d, cx+d, cy+d, 3, fg, true)
	vector.StrokeLine(dst, cx-d, cy+d, cx+d, cy-d, 3, fg, true)
}
