package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// ReconcileRuns 记录每日结算的执行结果分布
	ReconcileRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_reconcile_runs_total",
			Help: "Total number of daily schedule reconciliation passes",
		},
		[]string{"outcome"}, // noop / updated
	)

	StrikesIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "schedule_strikes_issued_total",
			Help: "Total number of strikes issued by reconciliation",
		},
	)

	CoursesEvicted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "schedule_courses_evicted_total",
			Help: "Total number of courses removed for reaching the strike limit",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ReconcileRuns)
	prometheus.MustRegister(StrikesIssued)
	prometheus.MustRegister(CoursesEvicted)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
