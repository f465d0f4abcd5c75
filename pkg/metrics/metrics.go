package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations per cache",
		},
		[]string{"cache", "op"}, // op: hit|miss|evicted|expired|invalidated
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
		[]string{"cache"},
	)
)

var (
	ReservationDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservation_decisions_total",
			Help: "Admission decisions of the reservation engine",
		},
		// outcome: admitted|limit_reached|already_sold|high_demand|duplicate_in_cart|backend_unavailable
		[]string{"op", "outcome"},
	)
	StoreRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_store_requests_total",
			Help: "Requests to the authoritative order store",
		},
		[]string{"method", "status"}, // status: ok|error
	)
)

func MustRegister() {
	prometheus.MustRegister(
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, CacheSize,
		ReservationDecisions, StoreRequests,
	)
}
