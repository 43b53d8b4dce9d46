package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder server 区分用户端和管理后台
func NewMetricsBuilder(server string) *MetricsBuilder {
	return newMetricsBuilder(promauto.With(prometheus.DefaultRegisterer), server)
}

func newMetricsBuilder(factory promauto.Factory, server string) *MetricsBuilder {
	labels := prometheus.Labels{"server": server}
	summaryVec := factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:   "minipay",
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		},
		[]string{"method", "path", "status_code"},
	)

	counterVec := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "minipay",
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		},
		[]string{"method", "path", "status_code"},
	)

	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		duration := time.Since(start).Seconds()
		method := ctx.Request.Method
		// 用路由模板，避免路径参数撑爆标签
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())

		a.summaryVec.WithLabelValues(method, path, statusCode).Observe(duration)
		a.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
