package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 推荐服务调用延迟（毫秒）
	RecommenderCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommender_call_latency_ms",
			Help:    "Recommender search call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"status"},
	)

	// MQ 消费延迟（毫秒）
	MQConsumeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mq_consume_latency_ms",
			Help:    "MQ message consumption latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		},
		[]string{"routing_key", "queue"},
	)

	// HTTP 请求延迟（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// 订阅处理计数
	SubscriptionsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digest_subscriptions_processed_total",
			Help: "Subscriptions examined by digest runs",
		},
		[]string{"result"}, // result: matched, empty
	)

	// 邮件发送计数
	DigestEmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digest_emails_sent_total",
			Help: "Digest emails handed to the dispatcher",
		},
		[]string{"status"}, // status: success, failed
	)
)

func RecordRecommenderCallLatency(status string, duration time.Duration) {
	RecommenderCallLatency.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

func RecordMQConsumeLatency(routingKey, queue string, duration time.Duration) {
	MQConsumeLatency.WithLabelValues(routingKey, queue).Observe(float64(duration.Milliseconds()))
}

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementSubscriptionsProcessed(result string) {
	SubscriptionsProcessed.WithLabelValues(result).Inc()
}

func IncrementDigestEmailsSent(status string) {
	DigestEmailsSent.WithLabelValues(status).Inc()
}
