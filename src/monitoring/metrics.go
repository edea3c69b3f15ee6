package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total orders committed",
		},
	)

	orderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_failures_total",
			Help: "Total rejected order attempts",
		},
		[]string{"reason"},
	)

	ticketsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Total tickets sold across all orders",
		},
	)
)

func RecordOrder(ticketCount int) {
	ordersCreated.Inc()
	ticketsSold.Add(float64(ticketCount))
}

func RecordOrderFailure(reason string) {
	orderFailures.WithLabelValues(reason).Inc()
}
