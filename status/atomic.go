package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 as bits, zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// AtomicString holds a short label such as a round id prefix
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to maxLabelLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > maxLabelLen {
		val = val[:maxLabelLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

const maxLabelLen = 36
