package card

// MetricsCollector defines the interface for collecting card metrics.
type MetricsCollector interface {
	RecordOperationResult(operation, result string)
	RecordBalanceChange(cardNumber string, delta float64)
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperationResult(string, string) {}
func (n *NoopMetricsCollector) RecordBalanceChange(string, float64)  {}
func (n *NoopMetricsCollector) RecordError(string, string)           {}
