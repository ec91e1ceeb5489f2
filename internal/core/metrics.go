package core

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	trainingJobsTotal       *prometheus.CounterVec
	trainingJobDuration     *prometheus.HistogramVec
	trainingJobsInProgress  prometheus.Gauge
	malformedTrainTaskTotal prometheus.Counter
)

func init() {
	trainingJobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: "trainer",
			Name:      "jobs_total",
			Help:      "Total number of training jobs processed",
		},
		[]string{"framework", "status"},
	)
	prometheus.MustRegister(trainingJobsTotal)

	trainingJobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Subsystem: "trainer",
			Name:      "job_duration_seconds",
			Help:      "Duration of training jobs in seconds",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600, 7200},
		},
		[]string{"framework"},
	)
	prometheus.MustRegister(trainingJobDuration)

	trainingJobsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Subsystem: "trainer",
			Name:      "jobs_in_progress",
			Help:      "Number of training jobs currently running",
		},
	)
	prometheus.MustRegister(trainingJobsInProgress)

	malformedTrainTaskTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: "trainer",
			Name:      "malformed_tasks_total",
			Help:      "Total number of queue messages that could not be decoded",
		},
	)
	prometheus.MustRegister(malformedTrainTaskTotal)
}
