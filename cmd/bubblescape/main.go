package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/san-kum/bubblescape/internal/config"
	"github.com/san-kum/bubblescape/internal/gui"
	"github.com/san-kum/bubblescape/internal/scene"
	"github.com/san-kum/bubblescape/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	seed       int64
	preset     string
	bgColor    string
	bubbles    int
	width      int
	height     int
	fps        int
	theme      string
	// Headless output
	snapshotFrames int
	recordFrames   int
	svgFrames      int
	every          int
	// Trace
	target string
	ticks  int
)

var (
	cyan  = color.New(color.FgCyan, color.Bold)
	green = color.New(color.FgGreen, color.Bold)
	red   = color.New(color.FgRed, color.Bold)
	dim   = color.New(color.FgWhite)
)

// main runs the CLI and exits the process with status 1 if command
// execution returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		red.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd registers the CLI commands. The root command opens the scene
// window when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bubblescape",
		Short:         "animated gradient and bubbles",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runWindow,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", config.DefaultPreset, "background color preset")
	rootCmd.PersistentFlags().StringVar(&bgColor, "color", "", "initial background color r,g,b (overrides preset)")
	rootCmd.PersistentFlags().IntVar(&bubbles, "bubbles", 0, "bubbles to spawn at start")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "surface width")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "surface height")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the scene in the terminal",
		RunE:  runTerminal,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme,
		"status line theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [out.png]",
		Short: "render frames off-screen and save the last one as PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapshotFrames, "frames", 60, "frames to run")

	recordCmd := &cobra.Command{
		Use:   "record [out.gif]",
		Short: "render frames off-screen into an animated GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().IntVar(&recordFrames, "frames", 120, "frames to run")
	recordCmd.Flags().IntVar(&every, "every", 2, "capture every n-th frame")

	svgCmd := &cobra.Command{
		Use:   "svg [out.svg]",
		Short: "render frames off-screen and save the last one as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSVG,
	}
	svgCmd.Flags().IntVar(&svgFrames, "frames", 60, "frames to run")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "plot background convergence toward a target color",
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&target, "target", "", "target color r,g,b (random when empty)")
	traceCmd.Flags().IntVar(&ticks, "ticks", 40, "maximum ticks to trace")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list background color presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cyan.Println("presets:")
			for _, name := range config.ListPresets() {
				c, _ := config.GetPreset(name)
				fmt.Printf("  %-8s %s\n", name, scene.RGB(c).CSS())
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			green.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, snapshotCmd, recordCmd, svgCmd, traceCmd, presetsCmd, initCmd)
	return rootCmd
}

// loadConfig builds the configuration from defaults, the optional config
// file and any flags set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Scene.Seed = seed
	}
	if flags.Changed("preset") {
		cfg.Scene.Preset = preset
		cfg.Scene.Color = ""
	}
	if flags.Changed("color") {
		cfg.Scene.Color = bgColor
	}
	if flags.Changed("bubbles") {
		cfg.Scene.InitialBubbles = bubbles
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("theme") {
		cfg.Terminal.Theme = theme
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = fps
		cfg.Terminal.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// sceneSetup resolves the random source and driver options from cfg.
func sceneSetup(cfg *config.Config) (*rand.Rand, scene.Options, error) {
	c, err := cfg.InitialColor()
	if err != nil {
		return nil, scene.Options{}, err
	}
	s := cfg.Scene.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	opts := scene.Options{
		InitialColor:   scene.RGB(c),
		InitialBubbles: cfg.Scene.InitialBubbles,
	}
	return rand.New(rand.NewSource(s)), opts, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rng, opts, err := sceneSetup(cfg)
	if err != nil {
		return err
	}
	return gui.Run(cfg, rng, opts)
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rng, opts, err := sceneSetup(cfg)
	if err != nil {
		return err
	}
	return viz.Run(cfg, rng, opts)
}
