package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waxmart_order_transition_total",
		Help: "Order status transitions, by requested status and outcome",
	}, []string{"status", "outcome"})

	TimelineReconstructTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "waxmart_timeline_reconstruct_total",
		Help: "Timeline reconstructions served",
	})

	PlatformFeeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "waxmart_platform_fee_collected_total",
		Help: "Sum of platform fees stamped on paid orders, in currency units",
	})
)

// RecordTransition records one transition attempt.
func RecordTransition(status, outcome string) {
	TransitionTotal.WithLabelValues(status, outcome).Inc()
}

// RecordPlatformFee adds a stamped fee to the running total.
func RecordPlatformFee(amount float64) {
	PlatformFeeTotal.Add(amount)
}
