// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "studio",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "booking_created_total",
			Help:      "Count of bookings submitted through the public form.",
		},
	)

	bookingStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "booking_status_changed_total",
			Help:      "Count of admin booking status changes by new status.",
		},
		[]string{"status"},
	)

	notification = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "booking_notification_total",
			Help:      "Count of booking notification attempts by result.",
		},
		[]string{"result"},
	)

	reorders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "reorder_total",
			Help:      "Count of bulk display order updates by collection.",
		},
		[]string{"collection"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, bookingCreated, bookingStatus, notification, reorders)
	})
}

func ObserveHTTP(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingStatus(status string) {
	bookingStatus.WithLabelValues(status).Inc()
}

func IncNotification(result string) {
	notification.WithLabelValues(result).Inc()
}

func IncReorder(collection string) {
	reorders.WithLabelValues(collection).Inc()
}
