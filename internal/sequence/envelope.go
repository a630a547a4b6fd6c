package sequence

import (
	"fmt"
	"sort"
)

// smootherstep is 6x^5 - 15x^4 + 10x^3.
func smootherstep(x float64) float64 {
	return x * x * x * (x*(x*6-15) + 10)
}

func (e Ease) apply(x float64) float64 {
	switch e {
	case Smooth:
		return x * x * (3 - 2*x)
	case Cubic:
		return smootherstep(x)
	default:
		return x
	}
}

// Eval interpolates the envelope at t seconds. Before the first key and
// after the last it holds the end values; with no keys it returns 0.
func (e Envelope) Eval(t float64) float64 {
	n := len(e.Keys)
	switch {
	case n == 0:
		return 0
	case t <= e.Keys[0].T:
		return e.Keys[0].V
	case t >= e.Keys[n-1].T:
		return e.Keys[n-1].V
	}
	// first key strictly after t; always in [1, n-1] here
	j := sort.Search(n, func(i int) bool { return e.Keys[i].T > t })
	a, b := e.Keys[j-1], e.Keys[j]
	span := b.T - a.T
	if span <= 0 {
		return b.V
	}
	u := a.Ease.apply((t - a.T) / span)
	return a.V + (b.V-a.V)*u
}

// Empty reports whether the envelope has no keys.
func (e Envelope) Empty() bool { return len(e.Keys) == 0 }

// Validate checks keys are sorted and easings are known.
func (e Envelope) Validate() error {
	for i, k := range e.Keys {
		switch k.Ease {
		case "", Linear, Smooth, Cubic:
		default:
			return fmt.Errorf("key %d: unknown ease %q", i, k.Ease)
		}
		if i > 0 && k.T < e.Keys[i-1].T {
			return fmt.Errorf("key %d: t=%v before previous t=%v", i, k.T, e.Keys[i-1].T)
		}
	}
	return nil
}
