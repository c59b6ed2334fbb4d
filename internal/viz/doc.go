// Package viz hosts the bubble scene in a terminal.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Terminal]: scene host backed by a Braille [Canvas] with per-cell colors
//   - [Model]: Bubble Tea model wiring mouse, keys and frame ticks to the scene
//
// # Key Bindings
//
//	Left click  - Pop the bubble under the pointer, or spawn one
//	Right click - Pick a new background color
//	R           - Pick a new background color
//	Q           - Quit
package viz
