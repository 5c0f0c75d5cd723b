// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ハンドラーやミドルウェアから利用する。
type MetricsCollector interface {
	RecordGenerated(kind string, count int)
	RecordRejected(kind string, reason string)
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	generated      *prometheus.CounterVec
	rejected       *prometheus.CounterVec
	batchSize      *prometheus.HistogramVec
	httpStatus     *prometheus.CounterVec
	requestLatency prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "randapi_items_generated_total",
			Help: "種別ごとの生成アイテム数の合計",
		}, []string{"kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "randapi_requests_rejected_total",
			Help: "種別・理由ごとのエラー応答数",
		}, []string{"kind", "reason"}),
		batchSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "randapi_batch_size",
			Help:    "1リクエストあたりの生成アイテム数",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"kind"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "randapi_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "randapi_request_latency_seconds",
			Help:    "リクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.generated,
		c.rejected,
		c.batchSize,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

// RecordGenerated は1リクエストで生成したアイテム数を記録する。
func (c *Collector) RecordGenerated(kind string, count int) {
	c.generated.WithLabelValues(kind).Add(float64(count))
	c.batchSize.WithLabelValues(kind).Observe(float64(count))
}

// RecordRejected はエラー応答を記録する。
func (c *Collector) RecordRejected(kind string, reason string) {
	c.rejected.WithLabelValues(kind, reason).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency はリクエスト処理のレイテンシを記録する。
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// NopCollector は何も記録しないMetricsCollector。
type NopCollector struct{}

func (NopCollector) RecordGenerated(string, int) {}
func (NopCollector) RecordRejected(string, string) {}
func (NopCollector) RecordHTTPStatus(int) {}
func (NopCollector) RecordRequestLatency(time.Duration) {}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
