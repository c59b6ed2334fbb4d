// Package scene provides the animated bubble scene independent of any window system.
//
// The scene is made of two components drawn onto a shared [Surface]:
//
//   - [Background]: a diagonal two-stop gradient whose color steps toward a target
//   - [BubbleSet]: translucent circles that grow, drift and wrap at the edges
//
// A [Driver] owns both components and runs them against a [Host], which adds
// input events and frame pacing to the surface.
//
// # Threading
//
// Nothing in this package is safe for concurrent use. Hosts must deliver
// input events and frame callbacks from a single goroutine; [Dispatcher]
// is provided for hosts that pump their own loop.
package scene
