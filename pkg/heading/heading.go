package heading

import (
	"math/rand/v2"
	"sync"
)

// Source yields compass headings in degrees.
type Source interface {
	Next() float64
}

// Random draws whole degrees uniformly from [0, 360]. It stands in for a
// real heading sensor.
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom seeds the generator with seed, or from the runtime when seed
// is zero.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Random{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Random) Next() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float64(r.rnd.IntN(361))
}

type Fixed float64

func (f Fixed) Next() float64 { return float64(f) }

// Func adapts a plain function to Source.
type Func func() float64

func (f Func) Next() float64 { return f() }
