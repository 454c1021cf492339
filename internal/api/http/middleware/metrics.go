package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophfeed-server/internal/metrics"
)

// Metrics records request counts and latency per route.
type Metrics struct {
	metrics *metrics.Metrics
}

func NewMetrics(m *metrics.Metrics) *Metrics {
	return &Metrics{metrics: m}
}

func (m *Metrics) Handle(c *gin.Context) {
	start := time.Now()
	c.Next()
	m.metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
}
