package recorder

import "time"

// FetchEvent records the outcome of one series fetch, success or not.
type FetchEvent struct {
	Series   string
	Source   string
	Records  int
	Duration time.Duration
	Err      string
}

// Recorder persists fetch history for later inspection.
type Recorder interface {
	RecordFetch(evt *FetchEvent) error
	Close() error
}
