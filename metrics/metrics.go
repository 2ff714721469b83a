// Package metrics re-expresses the donor server's atomic Stats counters
// (TotalConnections, ActiveConnections, TotalRequests, BytesRead,
// BytesWritten, ConnectionErrors, RequestErrors) against real
// prometheus/client_golang instruments instead of bare atomics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector is an optional metrics sink. Attach one to Config.Metrics to
// turn on instrumentation; leaving it nil disables metrics entirely.
type Collector struct {
	totalConnections  prometheus.Counter
	activeConnections prometheus.Gauge
	totalRequests     prometheus.Counter
	bytesRead         prometheus.Counter
	bytesWritten      prometheus.Counter
	connectionErrors  prometheus.Counter
	requestErrors     prometheus.Counter
}

// NewCollector registers a fresh set of instruments on reg. Pass
// prometheus.NewRegistry() for an isolated registry, or nil to use the
// default global one.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		totalConnections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ember", Name: "connections_total", Help: "Total accepted connections.",
		}),
		activeConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ember", Name: "connections_active", Help: "Currently open connections.",
		}),
		totalRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ember", Name: "requests_total", Help: "Total requests parsed.",
		}),
		bytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ember", Name: "bytes_read_total", Help: "Total bytes read from connections.",
		}),
		bytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ember", Name: "bytes_written_total", Help: "Total bytes written to connections.",
		}),
		connectionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ember", Name: "connection_errors_total", Help: "Connection-level errors.",
		}),
		requestErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ember", Name: "request_errors_total", Help: "Request-level parse/handler errors.",
		}),
	}
	reg.MustRegister(
		c.totalConnections, c.activeConnections, c.totalRequests,
		c.bytesRead, c.bytesWritten, c.connectionErrors, c.requestErrors,
	)
	return c
}

func (c *Collector) ConnectionAccepted() {
	if c == nil {
		return
	}
	c.totalConnections.Inc()
	c.activeConnections.Inc()
}

func (c *Collector) ConnectionClosed() {
	if c == nil {
		return
	}
	c.activeConnections.Dec()
}

func (c *Collector) RequestHandled() {
	if c == nil {
		return
	}
	c.totalRequests.Inc()
}

func (c *Collector) BytesRead(n int) {
	if c == nil {
		return
	}
	c.bytesRead.Add(float64(n))
}

func (c *Collector) BytesWritten(n int) {
	if c == nil {
		return
	}
	c.bytesWritten.Add(float64(n))
}

func (c *Collector) ConnectionError() {
	if c == nil {
		return
	}
	c.connectionErrors.Inc()
}

func (c *Collector) RequestError() {
	if c == nil {
		return
	}
	c.requestErrors.Inc()
}
