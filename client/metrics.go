package client

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "secom_client_requests_total",
		Help: "按接口和状态码分类统计的请求次数",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "secom_client_request_duration_seconds",
		Help:    "按接口分类统计的请求耗时",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

// statusClass 把具体状态码折叠成 2xx/4xx 这样的类别，避免指标标签爆炸。
func statusClass(statusCode int) string {
	return fmt.Sprintf("%dxx", statusCode/100)
}

func observeRequest(endpoint string, status string, duration time.Duration) {
	requestsTotal.WithLabelValues(endpoint, status).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
