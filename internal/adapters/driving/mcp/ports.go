package mcp

import (
	"github.com/custodia-labs/leafdex/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog serves plant queries.
	Catalog driving.CatalogService

	// Settings supplies the default top-N and suggestion limits.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	// Settings is optional; defaults apply without it.
	return nil
}
