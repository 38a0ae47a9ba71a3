package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of committed orders.",
	})

	orderNumberCollisions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "number_collisions_total",
		Help:      "Order number draws rejected by the unique constraint.",
	})

	ordersFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "failed_total",
		Help:      "Rejected order creations by reason.",
	}, []string{"reason"})

	paymentCallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "payments",
		Name:      "callbacks_total",
		Help:      "Processed payment callbacks by resulting status.",
	}, []string{"status"})
)
