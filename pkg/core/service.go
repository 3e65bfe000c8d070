package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
)

// Service loads records from a Source, compiles them and hands the result to a Sink.
type Service struct {
	source Source
	sink   Sink
	logger *slog.Logger

	mu        sync.RWMutex
	lastBuild *time.Time
	lastCount int
	lastErr   error
}

// NewService creates a new Service. A nil logger discards output.
func NewService(source Source, sink Sink, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{source: source, sink: sink, logger: logger}
}

// Check loads and compiles the records without writing anything.
func (s *Service) Check(ctx context.Context) ([]Pattern, error) {
	if s.source == nil {
		return nil, errors.New("no source configured")
	}

	records, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("records loaded", "records", len(records))

	patterns, err := Compile(records)
	s.record(len(patterns), err)
	if err != nil {
		return nil, err
	}
	return patterns, nil
}

// Build compiles the records and writes the dataset. Nothing is written when
// compilation fails.
func (s *Service) Build(ctx context.Context) ([]Pattern, error) {
	if s.sink == nil {
		return nil, errors.New("no sink configured")
	}

	patterns, err := s.Check(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.sink.Write(ctx, patterns); err != nil {
		return nil, err
	}
	s.logger.Info("dataset written", "patterns", len(patterns))
	return patterns, nil
}

// Watch builds once, then rebuilds every time the source reports a change.
// A failed rebuild leaves the previous dataset in place. The returned
// channel is closed when ctx is done.
func (s *Service) Watch(ctx context.Context) (<-chan BuildResult, error) {
	w, ok := s.source.(Watchable)
	if !ok {
		return nil, errors.New("source does not support watching")
	}

	events, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan BuildResult, 1)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)

		if !s.emit(ctx, out, nil) {
			return nil
		}
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				s.logger.Debug("rebuilding", "event", e.String())
				if !s.emit(ctx, out, &e) {
					return nil
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watch loop panic", "error", err)
	}))

	return out, nil
}

func (s *Service) emit(ctx context.Context, out chan<- BuildResult, trigger *Event) bool {
	patterns, err := s.Build(ctx)
	if err != nil {
		s.logger.Error("build failed", "error", err)
	}
	select {
	case out <- BuildResult{Patterns: patterns, Err: err, Trigger: trigger}:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *Service) record(count int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastBuild = &now
	s.lastCount = count
	s.lastErr = err
}
