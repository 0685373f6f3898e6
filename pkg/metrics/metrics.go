// Package metrics defines the Prometheus collectors exposed by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all registered collectors
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal    prometheus.Counter
	BookingConflictsTotal   prometheus.Counter
	BookingsCancelledTotal  prometheus.Counter
	SlotsGeneratedHistogram prometheus.Histogram
}

// New registers and returns the service metrics on the default registry
func New(serviceName string) *Metrics {
	m := build(serviceName)

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreatedTotal,
		m.BookingConflictsTotal,
		m.BookingsCancelledTotal,
		m.SlotsGeneratedHistogram,
	)

	return m
}

// NewUnregistered builds the collectors without registering them. Used when
// metrics are disabled so callers can record unconditionally.
func NewUnregistered() *Metrics {
	return build("disabled")
}

func build(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of HTTP requests by method, route and status code.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "code"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BookingsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Number of bookings successfully created.",
			ConstLabels: constLabels,
		}),

		BookingConflictsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Number of booking attempts rejected because the slot was taken.",
			ConstLabels: constLabels,
		}),

		BookingsCancelledTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Number of bookings cancelled.",
			ConstLabels: constLabels,
		}),

		SlotsGeneratedHistogram: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "day_schedule_slots_generated",
			Help:        "Number of slots generated per day-schedule request.",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 5, 10, 20, 40, 80},
		}),
	}
}

// IncBookingCreated counts one successfully created booking
func (m *Metrics) IncBookingCreated() {
	m.BookingsCreatedTotal.Inc()
}

// IncBookingConflict counts one booking attempt rejected on a taken slot
func (m *Metrics) IncBookingConflict() {
	m.BookingConflictsTotal.Inc()
}

// IncBookingCancelled counts one cancelled booking
func (m *Metrics) IncBookingCancelled() {
	m.BookingsCancelledTotal.Inc()
}

// ObserveSlotsGenerated records the slot count of one day-schedule response
func (m *Metrics) ObserveSlotsGenerated(count int) {
	m.SlotsGeneratedHistogram.Observe(float64(count))
}
