package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for leafdex resources.
	uriScheme = "leafdex://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource describing the last catalog load.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Outcome of the last catalog load",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// Template for a single plant by name.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "plants/{name}",
		Name:        "plant",
		Description: "A plant looked up by its common name, ignoring case",
		MIMEType:    "application/json",
	}, s.handlePlantResource)
}

// statsInfo is the JSON form of the catalog stats.
type statsInfo struct {
	Location        string `json:"location"`
	LoadID          string `json:"load_id"`
	Loaded          int    `json:"loaded"`
	Skipped         int    `json:"skipped"`
	SourceAvailable bool   `json:"source_available"`
	LoadedAt        string `json:"loaded_at,omitempty"`
}

// handleStatsResource returns the stats of the current catalog.
func (s *Server) handleStatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats := s.ports.Catalog.Stats()

	info := statsInfo{
		Location:        stats.Location,
		LoadID:          stats.LoadID,
		Loaded:          stats.Loaded,
		Skipped:         stats.Skipped,
		SourceAvailable: stats.SourceAvailable,
	}
	if !stats.LoadedAt.IsZero() {
		info.LoadedAt = stats.LoadedAt.Format(time.RFC3339)
	}

	return jsonResource(req.Params.URI, info, "stats")
}

// handlePlantResource returns the first plant whose name matches.
func (s *Server) handlePlantResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractPlantName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	for _, r := range s.ports.Catalog.SearchAll(name) {
		if strings.EqualFold(strings.TrimSpace(r.Name), name) {
			return jsonResource(req.Params.URI, plantOutput(r), "plant")
		}
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

func jsonResource(uri string, v any, what string) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", what, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPlantName extracts the unescaped name from a URI like leafdex://plants/{name}.
func extractPlantName(uri string) string {
	const prefix = uriScheme + "plants/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}
