package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Aerodesk
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	TicketsBookedTotal    prometheus.Counter
	BookingsRejectedTotal prometheus.CounterVec
	BoardingsTotal        prometheus.CounterVec
	MailEnqueuedTotal     prometheus.CounterVec
	MailDeliveredTotal    prometheus.Counter
	MailFailedTotal       prometheus.Counter
	CheckoutSessionsTotal prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodesk_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aerodesk_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "aerodesk_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodesk_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aerodesk_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodesk_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodesk_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		TicketsBookedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "aerodesk_tickets_booked_total",
				Help: "Total tickets persisted by the booking flow",
			},
		),
		BookingsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodesk_bookings_rejected_total",
				Help: "Booking submissions rejected by validation, by reason",
			},
			[]string{"reason"},
		),
		BoardingsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodesk_boardings_total",
				Help: "Boarding validations by outcome",
			},
			[]string{"outcome"},
		),
		MailEnqueuedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodesk_mail_enqueued_total",
				Help: "Mail messages placed on the outbound stream, by kind",
			},
			[]string{"kind"},
		),
		MailDeliveredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "aerodesk_mail_delivered_total",
				Help: "Mail messages handed to the SMTP relay",
			},
		),
		MailFailedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "aerodesk_mail_failed_total",
				Help: "Mail deliveries that failed and were dropped",
			},
		),
		CheckoutSessionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "aerodesk_checkout_sessions_total",
				Help: "Hosted checkout sessions created",
			},
		),
	}
}
