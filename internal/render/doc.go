// Package render displays chart canvases through ebiten. All display code is
// behind the ebiten build tag so headless builds stay free of GUI
// dependencies.
package render
