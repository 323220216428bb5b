package interfaces

import "time"

// IMetricsRecorder receives business counters from the use cases.
type IMetricsRecorder interface {
	SettlementComputed(outcome string, elapsed time.Duration)
	InvoiceAction(action, outcome string)
	ConcurrentModification(resource string)
}
