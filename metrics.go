package symcanon

import (
	"github.com/njchilds90/symcanon/internal/errwrap"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts canonicalizer activity. A nil *Metrics records nothing.
type Metrics struct {
	calls    prometheus.Counter
	errors   prometheus.Counter
	rewrites *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg, if reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "symcanon",
			Name:      "canonicalize_total",
			Help:      "Number of Canonicalize calls.",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "symcanon",
			Name:      "canonicalize_errors_total",
			Help:      "Number of Canonicalize calls that returned an error.",
		}),
		rewrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "symcanon",
			Name:      "rewrites_total",
			Help:      "Number of rewrite rule applications, by rule.",
		}, []string{"rule"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.calls, m.errors, m.rewrites} {
		if err := reg.Register(c); err != nil {
			return nil, errwrap.Wrapf(err, "can't register metrics")
		}
	}
	return m, nil
}

func (obj *Metrics) observeCall() {
	if obj == nil {
		return
	}
	obj.calls.Inc()
}

func (obj *Metrics) observeError() {
	if obj == nil {
		return
	}
	obj.errors.Inc()
}

func (obj *Metrics) observeRule(rule Rule) {
	if obj == nil {
		return
	}
	obj.rewrites.WithLabelValues(string(rule)).Inc()
}
