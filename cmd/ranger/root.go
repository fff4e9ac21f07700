package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/ranger"
	"github.com/phanxgames/ranger/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "ranger",
	Short: "Ranger runs a 2D scene graph demo",
	Long: `Ranger drives a node tree through a fixed-timestep loop: 30 updates and
up to 120 frames per second. "run" opens a window, "render" draws offscreen
and writes the last frame to a PNG.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, or error")
	addWorldFlags(rootCmd)
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	s, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(s)
	if err != nil {
		return err
	}
	ranger.SetLogger(logging.New(level))
	return nil
}

// addWorldFlags registers the flags that override config file values.
func addWorldFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", ranger.DefaultConfigFile, "Config file (YAML or JSON); missing files are ignored")
	f.String("title", "", "Window title")
	f.Int("width", 0, "Window width in pixels")
	f.Int("height", 0, "Window height in pixels")
	f.Float64("view-width", 0, "View width in world units")
	f.Float64("view-height", 0, "View height in world units")
	f.Bool("vsync", true, "Sync presents to the display")
	f.Bool("stats", false, "Draw the FPS/UPS overlay")
	f.Bool("coords", false, "Draw the mouse coordinate overlay")
	f.Bool("debug", false, "Enable tree depth and width warnings")
}

// buildProperties loads the config file and applies any flag the user set
// on top of it. The returned properties carry no config file, so Configure
// does not read it a second time.
func buildProperties(cmd *cobra.Command) (ranger.WorldProperties, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := ranger.LoadConfig(path)
	if err != nil {
		return ranger.WorldProperties{}, err
	}

	if flags.Changed("title") {
		cfg.Title, _ = flags.GetString("title")
	}
	if flags.Changed("width") {
		cfg.WindowWidth, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.WindowHeight, _ = flags.GetInt("height")
	}
	if flags.Changed("view-width") {
		cfg.ViewWidth, _ = flags.GetFloat64("view-width")
	}
	if flags.Changed("view-height") {
		cfg.ViewHeight, _ = flags.GetFloat64("view-height")
	}
	if flags.Changed("vsync") {
		cfg.VSync, _ = flags.GetBool("vsync")
	}
	if flags.Changed("stats") {
		cfg.ShowStats, _ = flags.GetBool("stats")
	}
	if flags.Changed("coords") {
		cfg.ShowCoordinates, _ = flags.GetBool("coords")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	if err := cfg.Validate(); err != nil {
		return ranger.WorldProperties{}, fmt.Errorf("config %s: %w", path, err)
	}
	return ranger.WorldProperties{Config: cfg}, nil
}
