package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var saveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mangaapi",
	Subsystem: "catalog",
	Name:      "saves_total",
	Help:      "Item saves by outcome (ok, partial, failed).",
}, []string{"outcome"})
