package pairwise

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionMatrixDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "evodyn_transition_matrix_duration_seconds",
		Help:    "Time to assemble a transition matrix",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
	})

	transitionMatrixStates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "evodyn_transition_matrix_states",
		Help:    "Number of states of assembled transition matrices",
		Buckets: prometheus.ExponentialBuckets(10, 10, 7),
	})

	gradientTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evodyn_gradient_total",
		Help: "Total gradients of selection computed",
	})

	calculationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evodyn_calculation_errors_total",
		Help: "Total failed calculations by operation",
	}, []string{"operation"})
)

// Operation labels for calculationErrors.
const (
	opTransitionMatrix = "transition_matrix"
	opGradient         = "gradient"
	opGradients        = "gradients"
	opTransition       = "transition_probability"
)
