package core

import "context"

// Source supplies the raw records to compile.
// Adhering to this interface keeps the pipeline independent of where the
// records are stored and how they are parsed.
type Source interface {
	// Load returns every record in discovery order.
	Load(ctx context.Context) ([]RawRecord, error)
}

// Sink persists a compiled dataset.
type Sink interface {
	// Write replaces the dataset with patterns. It must not leave a partial
	// dataset behind on failure.
	Write(ctx context.Context, patterns []Pattern) error
}

// Watchable defines an interface for sources that can report changes.
type Watchable interface {
	// Watch emits an event whenever the records may have changed. The channel
	// is closed when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
