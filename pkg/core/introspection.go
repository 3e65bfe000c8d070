package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	SourceType string     `json:"source_type"`
	SinkType   string     `json:"sink_type"`
	LastBuild  *time.Time `json:"last_build,omitempty"`
	Patterns   int        `json:"patterns"`
	LastError  string     `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := ServiceState{
		SourceType: componentType(s.source, "source"),
		SinkType:   componentType(s.sink, "sink"),
		LastBuild:  s.lastBuild,
		Patterns:   s.lastCount,
	}
	if s.lastErr != nil {
		state.LastError = s.lastErr.Error()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

func componentType(v any, fallback string) string {
	if v == nil {
		return "none"
	}
	if comp, ok := v.(introspection.Component); ok {
		return comp.ComponentType()
	}
	return fallback
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
