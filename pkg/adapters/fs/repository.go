package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/equality/pkg/core"
)

const (
	// DefaultOutput is the dataset file name used when none is configured.
	DefaultOutput = "patterns.json"
	// DefaultDebounce collapses bursts of filesystem events into one rebuild.
	DefaultDebounce = 100 * time.Millisecond
)

// DefaultPatterns are the globs used to discover record files.
var DefaultPatterns = []string{"**/*.yml", "**/*.yaml"}

// Repository reads records from a directory of data files and writes the
// compiled dataset to a single file. It implements core.Source, core.Sink
// and core.Watchable.
type Repository struct {
	Path        string
	config      Config
	serializers map[string]Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      []string
	lastWrite     *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string
	Patterns  []string // doublestar globs relative to Path
	Output    string   // dataset file; relative paths are used as given
	MustExist bool
	NFC       bool // normalize phrases to Unicode NFC while parsing
	Debounce  time.Duration
	Logger    *slog.Logger
	// ErrorHandler receives errors from the watch loop. Optional.
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if len(config.Patterns) == 0 {
		config.Patterns = DefaultPatterns
	}
	if config.Output == "" {
		config.Output = filepath.Join(config.Path, DefaultOutput)
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{
		Path:        config.Path,
		config:      config,
		serializers: DefaultSerializers(config.NFC),
	}
}

// SetSerializer registers a serializer for an extension (e.g. ".toml").
func (r *Repository) SetSerializer(ext string, s Serializer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serializers[ext] = s
}

// Output returns the dataset file path.
func (r *Repository) Output() string {
	return r.config.Output
}

// Initialize checks the data directory exists when MustExist is set.
func (r *Repository) Initialize(ctx context.Context) error {
	info, err := os.Stat(r.Path)
	if os.IsNotExist(err) {
		if r.config.MustExist {
			return fmt.Errorf("data path does not exist: %s", r.Path)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat data path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path is not a directory: %s", r.Path)
	}
	return nil
}

// Discover returns the record files under Path, relative and slash
// separated, sorted so the load order is deterministic.
func (r *Repository) Discover(ctx context.Context) ([]string, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.Path); os.IsNotExist(err) {
		return nil, nil
	}

	fsys := os.DirFS(r.Path)
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range r.config.Patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok || r.isIgnored(m) {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Load implements core.Source.
func (r *Repository) Load(ctx context.Context) ([]core.RawRecord, error) {
	files, err := r.Discover(ctx)
	if err != nil {
		return nil, err
	}

	var records []core.RawRecord
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ser, ok := r.serializerFor(rel)
		if !ok {
			r.config.Logger.Debug("skipping file without serializer", "file", rel)
			continue
		}

		data, err := os.ReadFile(filepath.Join(r.Path, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", rel, err)
		}

		parsed, err := ser.Parse(bytes.NewReader(data), rel)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", rel, err)
		}
		r.config.Logger.Debug("file loaded", "file", rel, "records", len(parsed))
		records = append(records, parsed...)
	}

	r.mu.Lock()
	r.lastLoad = files
	r.mu.Unlock()

	return records, nil
}

// Write implements core.Sink. The dataset format follows the output
// extension and defaults to JSON.
func (r *Repository) Write(ctx context.Context, patterns []core.Pattern) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ser, ok := r.serializerFor(r.config.Output)
	if !ok {
		ser = r.serializers[".json"]
	}

	data, err := ser.Serialize(patterns)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.config.Output), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeFileAtomic(r.config.Output, data, 0644); err != nil {
		return err
	}

	now := time.Now()
	r.mu.Lock()
	r.lastWrite = &now
	r.mu.Unlock()

	r.config.Logger.Debug("dataset saved", "path", r.config.Output, "bytes", len(data))
	return nil
}

// Watch implements core.Watchable.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event, 16)
	w := newWatchWorker(r, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *Repository) serializerFor(path string) (Serializer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.serializers[strings.ToLower(filepath.Ext(path))]
	return s, ok
}

// isIgnored reports whether rel (slash separated, relative to Path) is a
// hidden file, lives in a hidden directory, is a temp file or is the output.
func (r *Repository) isIgnored(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	if strings.HasPrefix(filepath.Base(rel), TempFilePrefix) {
		return true
	}
	return r.isOutput(filepath.Join(r.Path, filepath.FromSlash(rel)))
}

func (r *Repository) isOutput(path string) bool {
	a, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	b, err := filepath.Abs(r.config.Output)
	if err != nil {
		return false
	}
	return a == b
}

// matches reports whether rel is selected by one of the configured patterns.
func (r *Repository) matches(rel string) bool {
	for _, pattern := range r.config.Patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
