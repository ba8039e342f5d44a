package tokenapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 使用 Prometheus 统计请求，指标注册在独立的 Registry 上：
//   - tokenv2_requests_total ：请求数，按回执的 Code 分类。
//   - tokenv2_request_duration_seconds ：处理请求的耗时。
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics 创建一个 Metrics 。
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tokenv2",
			Name:      "requests_total",
			Help:      "Number of token requests, partitioned by response code.",
		}, []string{"code"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tokenv2",
			Name:      "request_duration_seconds",
			Help:      "Time spent handling token requests.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

// Observe 记录一个已完成的请求。
func (m *Metrics) Observe(state *ApiState) {
	code := ErrorCodeInternalError
	if state.Response != nil {
		code = state.Response.Code
	}

	m.requests.WithLabelValues(strconv.Itoa(code)).Inc()
	if !state.StartTime.IsZero() {
		m.duration.Observe(time.Since(state.StartTime).Seconds())
	}
}

// Wrap 返回一个 ApiLogger ，先调用 next 输出日志，再记录指标。 next 可为 nil 。
func (m *Metrics) Wrap(next ApiLogger) ApiLogger {
	return metricsLogger{m, next}
}

// Handler 返回以 Prometheus 文本格式输出指标的 http.Handler 。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

type metricsLogger struct {
	m    *Metrics
	next ApiLogger
}

func (x metricsLogger) Log(state *ApiState) {
	if x.next != nil {
		x.next.Log(state)
	}
	x.m.Observe(state)
}
