package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// This file defines the Prometheus metrics that are exposed by the application.

// httpRequestsTotal tracks HTTP requests partitioned by path, method and
// resulting status code.
var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "skycast_http_requests_total",
	Help: "Total number of HTTP requests by path, method and code.",
}, []string{"path", "method", "code"})

// refreshesTotal tracks engine refreshes by outcome (completed, ignored,
// cancelled).
var refreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "skycast_refreshes_total",
	Help: "Total number of engine refreshes by outcome.",
}, []string{"outcome"})

// selectionsTotal counts successful location selections.
var selectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "skycast_selections_total",
	Help: "Total number of successful location selections.",
})
