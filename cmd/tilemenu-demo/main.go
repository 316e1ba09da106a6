// Package main is the entry point for the tile menu demo.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tilemenu"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "tilemenu-demo",
		Short:   "Interactive demo of the radial tile menu",
		Version: version,
	}
	root.PersistentFlags().String("config", "", "YAML menu config (defaults when empty)")
	root.PersistentFlags().Bool("left-handed", false, "leave the thumb gap for a left hand")
	root.PersistentFlags().Bool("debug", false, "log menu state changes to stderr")

	root.AddCommand(runCmd(), layoutCmd())
	return root
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window; click or tap to show the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			opts := demoOptions{}
			opts.tiles, _ = cmd.Flags().GetInt("tiles")
			opts.width, _ = cmd.Flags().GetInt("width")
			opts.height, _ = cmd.Flags().GetInt("height")
			opts.app, _ = cmd.Flags().GetString("app")
			opts.script, _ = cmd.Flags().GetString("script")
			opts.handedSet = cmd.Flags().Changed("left-handed")
			return runDemo(cfg, opts)
		},
	}
	cmd.Flags().Int("tiles", 14, "number of tiles to offer")
	cmd.Flags().Int("width", 640, "window width")
	cmd.Flags().Int("height", 480, "window height")
	cmd.Flags().String("app", "tilemenu-demo", "app name for saved preferences (empty disables)")
	cmd.Flags().String("script", "", "JSON interaction script to play back")
	return cmd
}

func layoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the frames of a menu displayed at a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			x, _ := cmd.Flags().GetFloat64("x")
			y, _ := cmd.Flags().GetFloat64("y")
			w, _ := cmd.Flags().GetFloat64("width")
			h, _ := cmd.Flags().GetFloat64("height")
			return printLayout(cmd, cfg, tilemenu.Vec2{X: x, Y: y}, tilemenu.Rect{Width: w, Height: h})
		},
	}
	cmd.Flags().Float64("x", 200, "requested center x")
	cmd.Flags().Float64("y", 200, "requested center y")
	cmd.Flags().Float64("width", 400, "parent width")
	cmd.Flags().Float64("height", 400, "parent height")
	return cmd
}

// loadConfig reads --config and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (tilemenu.Config, error) {
	cfg := tilemenu.DefaultConfig()
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		var err error
		if cfg, err = tilemenu.LoadConfigFile(path); err != nil {
			return cfg, err
		}
	}
	if left, _ := cmd.Flags().GetBool("left-handed"); left {
		cfg.RightHanded = false
	}
	debug, _ := cmd.Flags().GetBool("debug")
	tilemenu.SetDebug(debug)
	return cfg, nil
}

func printLayout(cmd *cobra.Command, cfg tilemenu.Config, center tilemenu.Vec2, parent tilemenu.Rect) error {
	menu, err := tilemenu.New(&tilemenu.StaticDelegate{Tiles: make([]tilemenu.Tile, tilemenu.TilesPerPage)}, cfg)
	if err != nil {
		return err
	}
	actual, err := menu.Display(center, parent)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "center  %s\n", formatPoint(actual))
	fmt.Fprintf(out, "bezel   %s\n", formatRect(menu.BezelRect()))
	for slot := tilemenu.Slot(0); slot < tilemenu.TilesPerPage; slot++ {
		frame, _ := menu.TileFrame(slot)
		fmt.Fprintf(out, "tile %d  %s\n", slot, formatRect(frame))
	}
	frame, _ := menu.CenterTileFrame()
	fmt.Fprintf(out, "button  %s\n", formatRect(frame))
	return nil
}

func formatPoint(p tilemenu.Vec2) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

func formatRect(r tilemenu.Rect) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f, %.1f)", r.X, r.Y, r.Width, r.Height)
}
