package gui

import (
	"fmt"

	"github.com/san-kum/bubblescape/internal/config"
	"github.com/san-kum/bubblescape/internal/scene"
)

// Run opens a window and animates the scene until the window is closed.
// It must be called from the main goroutine.
func Run(cfg *config.Config, rng scene.Rand, opts scene.Options) error {
	win, err := Open(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Close()

	driver, err := scene.NewDriver(win, rng, opts)
	if err != nil {
		return err
	}
	if err := driver.Start(); err != nil {
		return fmt.Errorf("start scene: %w", err)
	}

	win.Loop()
	return nil
}
