package core

import "fmt"

// EventType represents the type of change in the data directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a data file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}

// BuildResult is the outcome of one compile triggered by Service.Watch.
type BuildResult struct {
	Patterns []Pattern
	Err      error
	// Trigger is the event that caused the build, nil for the initial one.
	Trigger *Event
}

func (r BuildResult) String() string {
	trigger := "initial"
	if r.Trigger != nil {
		trigger = r.Trigger.String()
	}
	if r.Err != nil {
		return fmt.Sprintf("build (%s) failed: %v", trigger, r.Err)
	}
	return fmt.Sprintf("build (%s): %d patterns", trigger, len(r.Patterns))
}
