// Package metrics provides build observability. Components receive a
// Recorder through dependency injection; the default NoopRecorder makes
// metrics collection free when disabled.
package metrics

// Recorder defines the metrics operations the build pipeline emits.
type Recorder interface {
	// DocumentRead counts a successfully resolved document.
	DocumentRead(collection string)
	// ReadError counts a read-phase error by category.
	ReadError(category string)
	// DocumentWritten counts a persisted output file.
	DocumentWritten(collection string)
	// DocumentSkipped counts a document skipped by the incremental check.
	DocumentSkipped(collection string)
	// BuildCompleted records a finished build's wall time.
	BuildCompleted(seconds float64)
}

// NoopRecorder is the default Recorder; every method inlines to nothing.
type NoopRecorder struct{}

func (NoopRecorder) DocumentRead(string)    {}
func (NoopRecorder) ReadError(string)       {}
func (NoopRecorder) DocumentWritten(string) {}
func (NoopRecorder) DocumentSkipped(string) {}
func (NoopRecorder) BuildCompleted(float64) {}
