package tilemenu

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("tilemenu: invalid config")

// Config holds the layout and appearance settings of a menu. It is fixed for
// the duration of a display session; change it with Menu.SetConfig while the
// menu is hidden.
type Config struct {
	// TileSide is the width and height of each tile, in pixels.
	TileSide int `yaml:"tileSide"`
	// TileGap is the spacing between neighboring tiles, and between the
	// outermost tiles and the bezel edge, in pixels.
	TileGap int `yaml:"tileGap"`
	// CornerRadius rounds the bezel and every tile.
	CornerRadius float64 `yaml:"cornerRadius"`
	// SelectionBorderWidth is the width of the highlight ring drawn around a
	// touched tile.
	SelectionBorderWidth int `yaml:"selectionBorderWidth"`

	// RightHanded leaves the thumb gap at the lower right. When false the
	// ring is rotated half a turn and the gap sits at the upper left.
	RightHanded bool `yaml:"rightHanded"`
	// DismissAfterTileActivated hides the menu once a tile is activated.
	DismissAfterTileActivated bool `yaml:"dismissAfterTileActivated"`
	// ShadowsEnabled draws drop shadows below the bezel and tiles.
	ShadowsEnabled bool `yaml:"shadowsEnabled"`
	// CloseButtonVisible shows the center button. When hidden the menu can
	// still be dismissed by tapping outside the bezel.
	CloseButtonVisible bool `yaml:"closeButtonVisible"`
	// StayVisibleOnResize moves a visible menu back on-screen when its parent
	// surface changes size, e.g. after a device rotation.
	StayVisibleOnResize bool `yaml:"stayVisibleOnResize"`

	// ScreenMargin is the minimum distance kept between the bezel and the
	// parent surface edges.
	ScreenMargin float64 `yaml:"screenMargin"`
	// SwipeThreshold is the horizontal travel, in pixels, that turns a drag
	// on the bezel into a page switch.
	SwipeThreshold float64 `yaml:"swipeThreshold"`
	// AnimationDuration is the length of show, hide and page tweens, in
	// seconds. Zero disables animation.
	AnimationDuration float32 `yaml:"animationDuration"`

	BezelColor           Color `yaml:"bezelColor"`
	TileTopColor         Color `yaml:"tileTopColor"`
	TileBottomColor      Color `yaml:"tileBottomColor"`
	SelectionTopColor    Color `yaml:"selectionTopColor"`
	SelectionBottomColor Color `yaml:"selectionBottomColor"`

	// CloseButtonImage replaces the drawn "X" on a single page menu.
	CloseButtonImage *ebiten.Image `yaml:"-"`
	// SelectedCloseButtonImage is shown while the close button is pressed.
	// Without it the pressed button keeps CloseButtonImage.
	SelectedCloseButtonImage *ebiten.Image `yaml:"-"`
	// PageButtonImage replaces the drawn page dots on a multi-page menu.
	PageButtonImage *ebiten.Image `yaml:"-"`
}

// DefaultConfig returns the stock look: 72px tiles with 20px gaps on a half
// transparent black bezel.
func DefaultConfig() Config {
	return Config{
		TileSide:                  72,
		TileGap:                   20,
		CornerRadius:              12,
		SelectionBorderWidth:      5,
		RightHanded:               true,
		DismissAfterTileActivated: true,
		ShadowsEnabled:            true,
		CloseButtonVisible:        true,
		StayVisibleOnResize:       true,
		ScreenMargin:              8,
		SwipeThreshold:            40,
		AnimationDuration:         0.2,
		BezelColor:                Color{0, 0, 0, 0.5},
		TileTopColor:              Color{0.42, 0.62, 0.93, 1},
		TileBottomColor:           Color{0.16, 0.34, 0.76, 1},
		SelectionTopColor:         Color{1, 1, 1, 1},
		SelectionBottomColor:      Color{0.78, 0.78, 0.78, 1},
	}
}

// Validate reports the first unusable setting. The returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.TileSide <= 0:
		return fmt.Errorf("%w: tileSide must be positive, got %d", ErrInvalidConfig, c.TileSide)
	case c.TileGap < 0:
		return fmt.Errorf("%w: tileGap cannot be negative, got %d", ErrInvalidConfig, c.TileGap)
	case c.CornerRadius < 0:
		return fmt.Errorf("%w: cornerRadius cannot be negative, got %v", ErrInvalidConfig, c.CornerRadius)
	case c.SelectionBorderWidth < 0:
		return fmt.Errorf("%w: selectionBorderWidth cannot be negative, got %d", ErrInvalidConfig, c.SelectionBorderWidth)
	case c.ScreenMargin < 0:
		return fmt.Errorf("%w: screenMargin cannot be negative, got %v", ErrInvalidConfig, c.ScreenMargin)
	case c.SwipeThreshold < 0:
		return fmt.Errorf("%w: swipeThreshold cannot be negative, got %v", ErrInvalidConfig, c.SwipeThreshold)
	case c.AnimationDuration < 0:
		return fmt.Errorf("%w: animationDuration cannot be negative, got %v", ErrInvalidConfig, c.AnimationDuration)
	}
	return nil
}

// LoadConfig decodes YAML over DefaultConfig and validates the result. Keys
// missing from data keep their default values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("tilemenu: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("tilemenu: read config %s: %w", path, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// UnmarshalYAML reads a color written as [r, g, b] or [r, g, b, a].
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var comps []float64
	if err := value.Decode(&comps); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	switch len(comps) {
	case 3:
		*c = Color{comps[0], comps[1], comps[2], 1}
	case 4:
		*c = Color{comps[0], comps[1], comps[2], comps[3]}
	default:
		return fmt.Errorf("color: want 3 or 4 components, got %d (line %d)", len(comps), value.Line)
	}
	return nil
}

// MarshalYAML writes the color as [r, g, b, a].
func (c Color) MarshalYAML() (any, error) {
	return []float64{c.R, c.G, c.B, c.A}, nil
}
