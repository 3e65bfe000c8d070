package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/equality/pkg/core"
)

type buildSource struct {
	results <-chan core.BuildResult
	out     chan lifecycle.Event
}

// NewSource exposes the results of core.Service.Watch as a lifecycle.Source,
// so a rebuild loop can be supervised next to other lifecycle components.
// Each emitted event is a core.BuildResult.
func NewSource(results <-chan core.BuildResult) lifecycle.Source {
	return &buildSource{
		results: results,
		out:     make(chan lifecycle.Event),
	}
}

func (s *buildSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *buildSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case r, ok := <-s.results:
				if !ok {
					return nil
				}
				select {
				case s.out <- r:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
