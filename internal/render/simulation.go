package render

import "fmt"

// Simulation is one lighting pattern. Tick recolors leds for the given time
// since the scene was selected and the user intensity in [0,1]. It must only
// write colors, never coordinates.
type Simulation interface {
	Name() string
	Tick(leds []LED, elapsedMicros uint64, intensity float64)
}

// Factory builds a fresh scene for a layout. Only coordinates are read.
type Factory func(leds []LED) Simulation

type entry struct {
	name string
	f    Factory
}

// Registry keeps scenes in display order.
type Registry struct {
	leds    []LED
	entries []entry
}

// NewRegistry returns a registry whose factories are probed against leds.
func NewRegistry(leds []LED) *Registry { return &Registry{leds: leds} }

// Register adds f. The factory is instantiated once to learn its name;
// a second factory with the same name replaces the first.
func (r *Registry) Register(f Factory) {
	if f == nil {
		return
	}
	name := f(r.leds).Name()
	for i := range r.entries {
		if r.entries[i].name == name {
			r.entries[i].f = f
			return
		}
	}
	r.entries = append(r.entries, entry{name: name, f: f})
}

func (r *Registry) Len() int { return len(r.entries) }

func (r *Registry) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.name
	}
	return out
}

// New instantiates the i-th scene with fresh state.
func (r *Registry) New(i int) (Simulation, error) {
	if i < 0 || i >= len(r.entries) {
		return nil, fmt.Errorf("scene index %d: %w", i, ErrUnknownScene)
	}
	return r.entries[i].f(r.leds), nil
}

// Index returns the position of name, or -1.
func (r *Registry) Index(name string) int {
	for i, e := range r.entries {
		if e.name == name {
			return i
		}
	}
	return -1
}

// Lookup instantiates a scene by display name.
func (r *Registry) Lookup(name string) (Simulation, error) {
	i := r.Index(name)
	if i < 0 {
		return nil, fmt.Errorf("scene %q: %w", name, ErrUnknownScene)
	}
	return r.New(i)
}
