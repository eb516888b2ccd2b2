package status

import (
	"math"
	"sync/atomic"
)

// Float is an atomic float64 stored as its IEEE bits
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
