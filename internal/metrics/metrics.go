package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters
var (
	RendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "puretone_renders_total",
		Help: "Total render requests by source and outcome",
	}, []string{"source", "outcome"})
	FramesRenderedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "puretone_frames_rendered_total",
		Help: "Total PCM frames synthesized",
	})
)

// Histograms
var (
	RenderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "puretone_render_duration_ms",
		Help:    "Render duration in milliseconds by stage",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"stage"})
)
