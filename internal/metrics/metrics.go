package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightdesk_http_requests_total",
		Help: "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	QuotesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flightdesk_quotes_computed_total",
		Help: "Price breakdowns computed for live quotes.",
	})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flightdesk_bookings_created_total",
		Help: "Bookings persisted.",
	})

	LifecycleTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightdesk_lifecycle_transitions_total",
		Help: "Booking lifecycle transitions by event and outcome.",
	}, []string{"event", "outcome"})
)
