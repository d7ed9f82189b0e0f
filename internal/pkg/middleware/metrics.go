package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	summaryVec  *prometheus.SummaryVec
	counterVec  *prometheus.CounterVec
	inflight    prometheus.Gauge
	ignorePaths map[string]struct{}
}

// NewMetricsBuilder reg 为 nil 时注册到默认的 Registerer
func NewMetricsBuilder(namespace string, reg prometheus.Registerer) *MetricsBuilder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	summaryVec := factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
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
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	inflight := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_in_flight",
		Help:      "Number of HTTP requests being served",
	})

	return &MetricsBuilder{
		summaryVec:  summaryVec,
		counterVec:  counterVec,
		inflight:    inflight,
		ignorePaths: map[string]struct{}{},
	}
}

// IgnorePaths 健康检查之类的路径不统计
func (a *MetricsBuilder) IgnorePaths(paths ...string) *MetricsBuilder {
	for _, p := range paths {
		a.ignorePaths[p] = struct{}{}
	}
	return a
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := a.ignorePaths[ctx.Request.URL.Path]; ok {
			ctx.Next()
			return
		}
		start := time.Now()
		a.inflight.Inc()
		defer a.inflight.Dec()

		// 处理请求
		ctx.Next()

		// 计算响应时间
		duration := time.Since(start).Seconds()

		// 获取请求信息
		method := ctx.Request.Method
		path := ctx.FullPath()
		if path == "" {
			// 未匹配到路由的统一归为一类, 避免标签爆炸
			path = "unmatched"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())

		// 记录响应时间指标
		a.summaryVec.WithLabelValues(method, path, statusCode).Observe(duration)

		// 记录访问次数指标
		a.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
