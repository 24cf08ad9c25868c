package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the round and the frame loop
const (
	KeyFrames      = "frames"
	KeyRounds      = "rounds"
	KeyCollisions  = "collisions"
	KeyHits        = "hits"
	KeyFalls       = "falls"
	KeyFired       = "fired"
	KeyProjectiles = "projectiles"
	KeyDraws       = "draws"
	KeyFPS         = "fps"
	KeyRoundID     = "round"
)

// Registry is the metrics facade shared by rounds and the front end
// Headless batches share one registry across goroutines, hence atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Format renders all metrics as "key=value" pairs in sorted order per kind
func (r *Registry) Format() string {
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}
	r.Strings.Range(func(k string, v *AtomicString) {
		sep()
		fmt.Fprintf(&b, "%s=%s", k, v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		sep()
		fmt.Fprintf(&b, "%s=%d", k, v.Load())
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		sep()
		fmt.Fprintf(&b, "%s=%.1f", k, v.Get())
	})
	return b.String()
}
