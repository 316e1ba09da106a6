package tilemenu

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{40, 60, true}, // edges are inside
		{25, 40, true},
		{9.9, 30, false},
		{25, 60.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectOverlapsVsIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	touching := Rect{X: 10, Y: 0, Width: 10, Height: 10}
	inside := Rect{X: 5, Y: 5, Width: 10, Height: 10}

	if !a.Intersects(touching) {
		t.Error("Intersects(touching) = false, want true")
	}
	if a.Overlaps(touching) {
		t.Error("Overlaps(touching) = true, want false")
	}
	if !a.Overlaps(inside) {
		t.Error("Overlaps(inside) = false, want true")
	}
}

func TestRectUnionAndInset(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: -5, Width: 5, Height: 5}
	u := a.Union(b)
	if u != (Rect{X: 0, Y: -5, Width: 25, Height: 15}) {
		t.Errorf("Union = %v", u)
	}
	if got := a.Inset(2); got != (Rect{X: 2, Y: 2, Width: 6, Height: 6}) {
		t.Errorf("Inset(2) = %v", got)
	}
	if got := a.Inset(-2); got != (Rect{X: -2, Y: -2, Width: 14, Height: 14}) {
		t.Errorf("Inset(-2) = %v", got)
	}
	if !u.ContainsRect(a) || !u.ContainsRect(b) {
		t.Error("union does not contain its inputs")
	}
}

func TestRectAroundAndCenter(t *testing.T) {
	r := RectAround(Vec2{X: 50, Y: 60}, 20, 10)
	if r != (Rect{X: 40, Y: 55, Width: 20, Height: 10}) {
		t.Errorf("RectAround = %v", r)
	}
	if c := CenterPoint(r); c != (Vec2{X: 50, Y: 60}) {
		t.Errorf("CenterPoint = %v", c)
	}
	if got := r.Offset(1, -1); got != (Rect{X: 41, Y: 54, Width: 20, Height: 10}) {
		t.Errorf("Offset = %v", got)
	}
}

func TestSlotIsRing(t *testing.T) {
	for s := Slot(-1); s <= SlotCenter+1; s++ {
		want := s >= 0 && s < TilesPerPage
		if s.IsRing() != want {
			t.Errorf("Slot(%d).IsRing() = %v, want %v", s, s.IsRing(), want)
		}
	}
}
