package hooks

import "time"

// Event names.
const (
	EventBuildStarted        = "build.started"
	EventBuildFinished       = "build.finished"
	EventDocumentInitialized = "document.initialized"
	EventDocumentWritten     = "document.written"
)

// Event is a named lifecycle notification.
type Event interface {
	Name() string
}

// BuildStarted fires once when a build run begins.
type BuildStarted struct {
	BuildID string    `json:"build_id"`
	Source  string    `json:"source"`
	Time    time.Time `json:"time"`
}

func (BuildStarted) Name() string { return EventBuildStarted }

// BuildFinished fires once when a build run completes.
type BuildFinished struct {
	BuildID   string        `json:"build_id"`
	Documents int           `json:"documents"`
	Written   int           `json:"written"`
	Duration  time.Duration `json:"duration"`
	Failed    bool          `json:"failed"`
}

func (BuildFinished) Name() string { return EventBuildFinished }

// DocumentInitialized fires after a document record is constructed
// (post-init), before its content is read.
type DocumentInitialized struct {
	BuildID    string `json:"build_id"`
	Path       string `json:"path"`
	Collection string `json:"collection"`
}

func (DocumentInitialized) Name() string { return EventDocumentInitialized }

// DocumentWritten fires after a document's output is persisted
// (post-write).
type DocumentWritten struct {
	BuildID     string `json:"build_id"`
	Path        string `json:"path"`
	Collection  string `json:"collection"`
	URL         string `json:"url"`
	Destination string `json:"destination"`
}

func (DocumentWritten) Name() string { return EventDocumentWritten }
