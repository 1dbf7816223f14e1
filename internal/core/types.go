package core

import "randviz/internal/chart"

// Size describes the pixel dimensions of a simulation's chart surface.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract an animated probability simulation must
// implement. Reset must make the run fully deterministic for a given seed.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Done() bool
	Status() string
	Render(c *chart.Canvas)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
