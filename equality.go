package equality

import (
	"log/slog"
	"time"

	"github.com/aretw0/equality/internal/platform"
	"github.com/aretw0/equality/pkg/core"
)

// Version is the release of the compiler, overridden at build time with
// -ldflags "-X github.com/aretw0/equality.Version=...".
var Version = "dev"

// --- Types ---

// Pattern is a compiled record.
type Pattern = core.Pattern

// RawRecord is a record as authored.
type RawRecord = core.RawRecord

// Service loads, compiles and writes a dataset.
type Service = core.Service

// --- Errors ---

var (
	ErrSchemaViolation    = core.ErrSchemaViolation
	ErrForbiddenCharacter = core.ErrForbiddenCharacter
	ErrDuplicatePhrase    = core.ErrDuplicatePhrase
)

// --- Configuration ---

// Option defines a functional option for configuring the compiler.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSource allows injecting a custom record source.
func WithSource(source core.Source) Option {
	return platform.WithSource(source)
}

// WithSink allows injecting a custom dataset sink.
func WithSink(sink core.Sink) Option {
	return platform.WithSink(sink)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithPatterns replaces the globs used to discover record files.
func WithPatterns(patterns ...string) Option {
	return platform.WithPatterns(patterns...)
}

// WithOutput sets the dataset file.
func WithOutput(path string) Option {
	return platform.WithOutput(path)
}

// WithMustExist makes a missing data directory an error.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithUnicodeNormalization normalizes phrases to Unicode NFC while loading.
func WithUnicodeNormalization(enabled bool) Option {
	return platform.WithUnicodeNormalization(enabled)
}

// WithDebounce sets how long the watcher waits for changes to settle.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithWatcherErrorHandler registers a callback for errors in the watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new compiler Service reading records from dir.
func New(dir string, opts ...Option) (*core.Service, error) {
	return platform.New(dir, opts...)
}

// Compile runs the pipeline over records already in memory.
func Compile(records []RawRecord) ([]Pattern, error) {
	return core.Compile(records)
}

// --- Project ---

// FindRoot looks upwards from startDir for a .equality.yml file or a .git directory.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// ProjectConfig is the content of a .equality.yml file.
type ProjectConfig = platform.Config

// LoadProjectConfig reads .equality.yml from root, if present.
func LoadProjectConfig(root string) (ProjectConfig, error) {
	return platform.LoadConfig(root)
}
