package llm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mangaapi",
		Subsystem: "llm",
		Name:      "calls_total",
		Help:      "Completion calls by outcome (ok, upstream, transport).",
	}, []string{"outcome"})

	callDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mangaapi",
		Subsystem: "llm",
		Name:      "call_duration_seconds",
		Help:      "Completion call latency.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
	})
)
