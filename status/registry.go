package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry collects scene telemetry for the debug status line and the log
// Writers cache pointers at construction and update them every frame
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Float]
	Labels *MetricMap[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Float](),
		Labels: NewMetricMap[Label](),
	}
}

// Line formats every metric as "key=value" pairs, labels first
func (r *Registry) Line() string {
	var parts []string
	r.Labels.Range(func(k string, v *Label) {
		parts = append(parts, k+"="+v.Get())
	})
	r.Floats.Range(func(k string, v *Float) {
		parts = append(parts, fmt.Sprintf("%s=%.3f", k, v.Get()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	return strings.Join(parts, " ")
}

// Attrs returns the metrics as alternating key/value pairs for slog
func (r *Registry) Attrs() []any {
	var attrs []any
	r.Labels.Range(func(k string, v *Label) { attrs = append(attrs, k, v.Get()) })
	r.Floats.Range(func(k string, v *Float) { attrs = append(attrs, k, v.Get()) })
	r.Ints.Range(func(k string, v *atomic.Int64) { attrs = append(attrs, k, v.Load()) })
	return attrs
}
