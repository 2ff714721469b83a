package ember

// MetricsSink receives connection/request counters from the connection
// driver. *metrics.Collector satisfies this; a nil Config.Metrics disables
// instrumentation entirely.
type MetricsSink interface {
	ConnectionAccepted()
	ConnectionClosed()
	RequestHandled()
	BytesRead(n int)
	BytesWritten(n int)
	ConnectionError()
	RequestError()
}
