package tilemenu

import "github.com/hajimehoshi/ebiten/v2"

// Delegate supplies the menu's tiles. The menu keeps the reference it was
// given but never owns it; the host controls its lifetime.
type Delegate interface {
	// NumberOfTiles returns the total number of tiles across all pages.
	NumberOfTiles(m *Menu) int
	// Tile returns the content of the tile at a zero-based global index.
	Tile(m *Menu, index int) Tile
}

// DismissVetoer is an optional Delegate extension consulted when the user
// taps outside the bezel. Returning false keeps the menu open.
type DismissVetoer interface {
	ShouldDismiss(m *Menu) bool
}

// TileActivator is an optional Delegate extension called when a tile is
// activated, after observers have seen EventDidActivateTile.
type TileActivator interface {
	TileActivated(m *Menu, index int)
}

// Tile is the content of one menu tile.
type Tile struct {
	Title string
	// Image is drawn centered in the tile, scaled down to fit. May be nil.
	Image *ebiten.Image
	// Background overrides the config tile gradient with a flat color.
	Background *Color
}

// StaticDelegate serves a fixed list of tiles.
type StaticDelegate struct {
	Tiles []Tile
	// OnActivate, if set, is called for every activated tile.
	OnActivate func(m *Menu, index int)
	// Veto, if set, decides whether an outside tap dismisses the menu.
	Veto func(m *Menu) bool
}

// NumberOfTiles implements Delegate.
func (d *StaticDelegate) NumberOfTiles(*Menu) int { return len(d.Tiles) }

// Tile implements Delegate.
func (d *StaticDelegate) Tile(_ *Menu, index int) Tile {
	if index < 0 || index >= len(d.Tiles) {
		return Tile{}
	}
	return d.Tiles[index]
}

// TileActivated implements TileActivator.
func (d *StaticDelegate) TileActivated(m *Menu, index int) {
	if d.OnActivate != nil {
		d.OnActivate(m, index)
	}
}

// ShouldDismiss implements DismissVetoer.
func (d *StaticDelegate) ShouldDismiss(m *Menu) bool {
	if d.Veto != nil {
		return d.Veto(m)
	}
	return true
}
