package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/equality/pkg/core"
)

// options holds the internal configuration for the compiler service.
type options struct {
	source       core.Source
	sink         core.Sink
	logger       *slog.Logger
	adapter      string
	patterns     []string
	output       string
	mustExist    bool
	nfc          bool
	debounce     time.Duration
	errorHandler func(error)
}

// Option defines a functional option for configuring the compiler.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
	}
}

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource allows injecting a custom record source (e.g. in-memory, remote).
// If provided, the filesystem source is skipped.
func WithSource(source core.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithSink allows injecting a custom dataset sink.
// If provided, the filesystem sink is skipped.
func WithSink(sink core.Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithAdapter allows specifying the storage adapter to use by name (e.g. "fs").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithPatterns replaces the globs used to discover record files.
// Defaults to "**/*.yml" and "**/*.yaml".
func WithPatterns(patterns ...string) Option {
	return func(o *options) {
		o.patterns = patterns
	}
}

// WithOutput sets the dataset file. Its extension selects the format.
// Defaults to patterns.json inside the data directory.
func WithOutput(path string) Option {
	return func(o *options) {
		o.output = path
	}
}

// WithMustExist makes a missing data directory an error instead of an empty corpus.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithUnicodeNormalization normalizes phrases to Unicode NFC while loading,
// so visually identical phrases compare equal.
func WithUnicodeNormalization(enabled bool) Option {
	return func(o *options) {
		o.nfc = enabled
	}
}

// WithDebounce sets how long the watcher waits for a burst of changes to settle.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithWatcherErrorHandler registers a callback to handle errors occurring during the Watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
