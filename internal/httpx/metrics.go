package httpx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mangaapi",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by method and status class.",
}, []string{"method", "status"})
