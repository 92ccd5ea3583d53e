package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
	Rollbacks     *prometheus.CounterVec
}

type BusinessMetrics struct {
	CustomersCreated prometheus.Counter
	CustomersDeleted prometheus.Counter
	AddressesCreated prometheus.Counter
	EventsPublished  *prometheus.CounterVec
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loja_sql_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
		Rollbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loja_sql_db_rollbacks_total",
				Help: "Total number of rolled back local transactions.",
			},
			[]string{"operation", "status"},
		),
	}

	Business = BusinessMetrics{
		CustomersCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loja_sql_customers_created_total",
				Help: "Total number of customers successfully created.",
			},
		),
		CustomersDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loja_sql_customers_deleted_total",
				Help: "Total number of customers successfully deleted.",
			},
		),
		AddressesCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loja_sql_addresses_created_total",
				Help: "Total number of addresses successfully created.",
			},
		),
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loja_sql_events_published_total",
				Help: "Total number of customer events handed to the broker.",
			},
			[]string{"routing_key", "status"},
		),
	}
)

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordRollback(operation, status string) {
	DB.Rollbacks.WithLabelValues(operation, status).Inc()
}

func RecordCustomerCreated() {
	Business.CustomersCreated.Inc()
}

func RecordCustomerDeleted() {
	Business.CustomersDeleted.Inc()
}

func RecordAddressCreated() {
	Business.AddressesCreated.Inc()
}

func RecordEventPublished(routingKey, status string) {
	Business.EventsPublished.WithLabelValues(routingKey, status).Inc()
}

// QueryStatus maps a query error to the status label.
func QueryStatus(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
