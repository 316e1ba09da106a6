package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/tilemenu"
)

const (
	prefsName = "main"
	titleSize = 11
)

type demoOptions struct {
	tiles     int
	width     int
	height    int
	app       string
	script    string
	handedSet bool // --left-handed was given and overrides saved prefs
}

type demo struct {
	menu     *tilemenu.Menu
	prefs    *tilemenu.PrefStore
	lastPage int
	w, h     int
	status   string
	touchBuf []ebiten.TouchID
}

func runDemo(cfg tilemenu.Config, opts demoOptions) error {
	store := tilemenu.NewPrefStore(nil)
	if opts.app != "" {
		s, err := tilemenu.OpenPrefStore(opts.app)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (preferences will not be saved)\n", err)
		} else {
			store = s
		}
	}
	prefs, err := store.Load(prefsName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if !opts.handedSet {
		prefs.Apply(&cfg)
	}

	menu, err := tilemenu.New(newDemoDelegate(opts.tiles), cfg)
	if err != nil {
		return err
	}
	face, err := demoFont()
	if err != nil {
		return err
	}
	menu.SetFont(face)
	store.Track(prefsName, menu)

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := tilemenu.LoadScript(data)
		if err != nil {
			return err
		}
		menu.SetScript(runner)
	}

	d := &demo{
		menu:     menu,
		prefs:    store,
		lastPage: prefs.LastPage,
		w:        opts.width,
		h:        opts.height,
		status:   "click or tap anywhere",
	}
	menu.On(tilemenu.EventDidActivateTile, func(e tilemenu.Event) {
		d.status = fmt.Sprintf("activated %q", e.Menu.Delegate().Tile(e.Menu, e.Tile).Title)
	})
	menu.On(tilemenu.EventWillDismiss, func(e tilemenu.Event) {
		d.lastPage = e.Menu.CurrentPage()
	})

	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle("Tile Menu Demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(d)
}

func demoFont() (text.Face, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: titleSize}, nil
}

func newDemoDelegate(n int) *tilemenu.StaticDelegate {
	d := &tilemenu.StaticDelegate{}
	for i := 0; i < n; i++ {
		d.Tiles = append(d.Tiles, tilemenu.Tile{Title: fmt.Sprintf("Item %d", i+1)})
	}
	return d
}

func (d *demo) bounds() tilemenu.Rect {
	return tilemenu.Rect{Width: float64(d.w), Height: float64(d.h)}
}

func (d *demo) Update() error {
	d.menu.HandleInput()
	if !d.menu.IsVisible() {
		if x, y, ok := d.justPressed(); ok {
			page := d.lastPage
			if page < 0 || page >= d.menu.PageCount() {
				page = 0
			}
			if _, err := d.menu.DisplayPage(page, tilemenu.Vec2{X: x, Y: y}, d.bounds()); err != nil {
				d.status = err.Error()
			}
		}
	}
	d.menu.Update(1.0 / float32(ebiten.TPS()))
	return nil
}

// justPressed reports a new mouse click or touch this tick.
func (d *demo) justPressed() (float64, float64, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return float64(x), float64(y), true
	}
	d.touchBuf = inpututil.AppendJustPressedTouchIDs(d.touchBuf[:0])
	if len(d.touchBuf) > 0 {
		x, y := ebiten.TouchPosition(d.touchBuf[0])
		return float64(x), float64(y), true
	}
	return 0, 0, false
}

func (d *demo) Draw(screen *ebiten.Image) {
	page := "-"
	if d.menu.IsVisible() {
		page = fmt.Sprintf("%d/%d", d.menu.CurrentPage()+1, d.menu.PageCount())
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\npage %s", d.status, page))
	d.menu.Draw(screen)
}

func (d *demo) Layout(w, h int) (int, int) {
	if w != d.w || h != d.h {
		d.w, d.h = w, h
		d.menu.Relayout(d.bounds())
	}
	return w, h
}
