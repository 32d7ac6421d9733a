package site

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var decisions = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "front_page_decisions_total",
		Help: "Number of front page requests, differentiated by the override decision reason.",
	},
	[]string{"reason"},
)
