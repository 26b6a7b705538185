// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
type Recorder interface {
	// User directory metrics
	IncUserCreated()
	IncUserRejected(reason string)
	IncUserLookupMiss()

	// Event stream metrics
	IncEventPublished(status string) // status: "success" or "dropped"
}
