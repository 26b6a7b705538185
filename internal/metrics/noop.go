package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncUserRejected is a no-op.
func (n *NoopRecorder) IncUserRejected(reason string) {}

// IncUserLookupMiss is a no-op.
func (n *NoopRecorder) IncUserLookupMiss() {}

// IncEventPublished is a no-op.
func (n *NoopRecorder) IncEventPublished(status string) {}
