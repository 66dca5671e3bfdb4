package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 按 method/path/status 维度记录请求次数和耗时
type MetricsBuilder struct {
	durationVec *prometheus.SummaryVec
	totalVec    *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	return &MetricsBuilder{
		durationVec: promauto.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		totalVec: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		method := ctx.Request.Method
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		status := strconv.Itoa(ctx.Writer.Status())

		b.durationVec.WithLabelValues(method, path, status).
			Observe(time.Since(start).Seconds())
		b.totalVec.WithLabelValues(method, path, status).Inc()
	}
}
