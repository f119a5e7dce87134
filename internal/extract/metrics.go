package extract

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mangaapi",
		Subsystem: "extract",
		Name:      "fetches_total",
		Help:      "Source URL fetches by outcome (ok, failed).",
	}, []string{"outcome"})

	parseFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mangaapi",
		Subsystem: "extract",
		Name:      "parse_failures_total",
		Help:      "Model replies that could not be parsed, by kind.",
	}, []string{"kind"})

	extractTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mangaapi",
		Subsystem: "extract",
		Name:      "runs_total",
		Help:      "Pipeline runs by outcome.",
	}, []string{"outcome"})
)
