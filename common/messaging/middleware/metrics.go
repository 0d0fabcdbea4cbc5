package middleware

import (
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registerOnce sync.Once

	processDuration *prometheus.HistogramVec
	processTotal    *prometheus.CounterVec
	messageSize     *prometheus.HistogramVec
)

// 指标按 service/topic 维度区分，全局注册一次
func initMetrics() {
	registerOnce.Do(func() {
		processDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "messaging",
				Name:      "process_duration_seconds",
				Help:      "Message process duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "topic"},
		)
		processTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "messaging",
				Name:      "process_total",
				Help:      "Total number of processed messages",
			},
			[]string{"service", "topic", "status"},
		)
		messageSize = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "messaging",
				Name:      "message_size_bytes",
				Help:      "Message size in bytes",
				Buckets:   prometheus.ExponentialBuckets(100, 10, 6), // 100B ~ 10MB
			},
			[]string{"service", "topic"},
		)
	})
}

// NewMetricsMiddleware 创建 Prometheus 指标收集中间件
// 自动收集消息处理时长、计数和消息大小
func NewMetricsMiddleware(serviceName string) message.HandlerMiddleware {
	initMetrics()

	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			topic := msg.Metadata.Get("topic")
			if topic == "" {
				topic = "unknown"
			}

			messageSize.WithLabelValues(serviceName, topic).Observe(float64(len(msg.Payload)))

			start := time.Now()
			produced, err := h(msg)
			processDuration.WithLabelValues(serviceName, topic).Observe(time.Since(start).Seconds())

			status := "success"
			if err != nil {
				status = "error"
			}
			processTotal.WithLabelValues(serviceName, topic, status).Inc()

			return produced, err
		}
	}
}
