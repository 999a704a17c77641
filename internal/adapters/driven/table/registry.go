package table

import (
	"context"
	"fmt"

	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
)

// Ensure Registry implements the interfaces.
var (
	_ driven.TableSource = (*Registry)(nil)
	_ driven.TableSink   = (*Registry)(nil)
)

// Sink is a TableSink that can say which locations it handles.
type Sink interface {
	driven.TableSink
	Name() string
	Supports(location string) bool
}

// Registry routes a location to the first registered adapter that
// supports it. It is itself a TableSource and a TableSink.
type Registry struct {
	sources []driven.TableSource
	sinks   []Sink
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a table source. Sources are tried in registration order.
func (r *Registry) Register(source driven.TableSource) {
	r.sources = append(r.sources, source)
}

// RegisterSink adds a table sink. Sinks are tried in registration order.
func (r *Registry) RegisterSink(sink Sink) {
	r.sinks = append(r.sinks, sink)
}

// Name returns the source type identifier.
func (r *Registry) Name() string {
	return "registry"
}

// Supports reports whether any registered source handles location.
func (r *Registry) Supports(location string) bool {
	return r.sourceFor(location) != nil
}

// Names returns the names of the registered sources.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for _, s := range r.sources {
		names = append(names, s.Name())
	}
	return names
}

// Open opens location with the first source that supports it.
// An unsupported location wraps both ErrUnsupportedSource and
// ErrSourceUnavailable.
func (r *Registry) Open(ctx context.Context, location string) (driven.Table, error) {
	source := r.sourceFor(location)
	if source == nil {
		return nil, fmt.Errorf("%w: %w: %q", domain.ErrSourceUnavailable, domain.ErrUnsupportedSource, location)
	}
	return source.Open(ctx, location)
}

// Write writes to location with the first sink that supports it.
func (r *Registry) Write(ctx context.Context, location string, header []string, rows [][]string) error {
	for _, sink := range r.sinks {
		if sink.Supports(location) {
			return sink.Write(ctx, location, header, rows)
		}
	}
	return fmt.Errorf("%w: cannot write %q", domain.ErrUnsupportedSource, location)
}

func (r *Registry) sourceFor(location string) driven.TableSource {
	for _, s := range r.sources {
		if s.Supports(location) {
			return s
		}
	}
	return nil
}
