package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PurchaseRecords 購票批次中每張票券的寫入結果 (created, updated, invalid)
	PurchaseRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchase_records_total",
			Help: "Ticket purchase records written per outcome",
		},
		[]string{"outcome"},
	)

	PurchaseLockContention = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_purchase_lock_contention_total",
			Help: "Purchase requests rejected because another purchase of the same user was running",
		},
	)

	PaymentRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchase_payments_total",
			Help: "Purchase records marked paid per status",
		},
		[]string{"status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
