package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// TopInput is the input schema for the top_plants tool.
type TopInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of plants to return (default from settings, usually 10)"`
}

// SearchInput is the input schema for the search_plants tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"text to find in common or scientific plant names"`
	All   bool   `json:"all,omitempty" jsonschema:"with an empty query return every plant instead of the top 10"`
}

// BrowseInput is the input schema for the browse_plants tool.
type BrowseInput struct {
	ByRating bool `json:"by_rating,omitempty" jsonschema:"order by rating, best first, instead of by name"`
}

// SuggestInput is the input schema for the suggest_plants tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"possibly misspelt plant name"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of suggestions (default 5)"`
}

// PlantsOutput is the output schema for tools returning plants.
type PlantsOutput struct {
	Plants []PlantOutput `json:"plants"`
	Count  int           `json:"count"`
}

// PlantOutput represents a single plant.
type PlantOutput struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ScientificName string  `json:"scientific_name,omitempty"`
	O2Release      string  `json:"o2_release"`
	O2Tier         string  `json:"o2_tier"`
	CO2Absorption  string  `json:"co2_absorption"`
	CO2Tier        string  `json:"co2_tier"`
	Description    string  `json:"description"`
	Rating         float64 `json:"rating"`
}

// SuggestOutput is the output schema for the suggest_plants tool.
type SuggestOutput struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "top_plants",
		Description: "List the highest-rated plants, best first",
	}, s.handleTop)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_plants",
		Description: "Find plants whose common or scientific name contains the query",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "browse_plants",
		Description: "List every plant by name or by rating",
	}, s.handleBrowse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_plants",
		Description: "Suggest plant names similar to a query that found nothing",
	}, s.handleSuggest)
}

// handleTop handles the top_plants tool invocation.
func (s *Server) handleTop(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TopInput,
) (*mcp.CallToolResult, PlantsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = s.settings().Catalog.TopN
	}
	return nil, plantsOutput(s.ports.Catalog.TopN(limit)), nil
}

// handleSearch handles the search_plants tool invocation.
func (s *Server) handleSearch(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, PlantsOutput, error) {
	if input.All {
		return nil, plantsOutput(s.ports.Catalog.SearchAll(input.Query)), nil
	}
	return nil, plantsOutput(s.ports.Catalog.Search(input.Query)), nil
}

// handleBrowse handles the browse_plants tool invocation.
func (s *Server) handleBrowse(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BrowseInput,
) (*mcp.CallToolResult, PlantsOutput, error) {
	return nil, plantsOutput(s.ports.Catalog.AllSorted(input.ByRating)), nil
}

// handleSuggest handles the suggest_plants tool invocation.
func (s *Server) handleSuggest(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, SuggestOutput{}, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.settings().Suggest.Limit
	}

	names := s.ports.Catalog.Suggest(input.Query, limit)
	if names == nil {
		names = []string{}
	}
	return nil, SuggestOutput{Names: names, Count: len(names)}, nil
}

// settings returns the configured settings, or the defaults.
func (s *Server) settings() domain.AppSettings {
	if s.ports.Settings == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return s.ports.Settings.GetDefaults()
	}
	return *settings
}

func plantsOutput(records []domain.Record) PlantsOutput {
	output := PlantsOutput{
		Plants: make([]PlantOutput, len(records)),
		Count:  len(records),
	}
	for i := range records {
		output.Plants[i] = plantOutput(records[i])
	}
	return output
}

func plantOutput(r domain.Record) PlantOutput {
	return PlantOutput{
		ID:             r.ID,
		Name:           r.Name,
		ScientificName: r.ScientificName,
		O2Release:      r.O2Release,
		O2Tier:         r.O2().Tier.String(),
		CO2Absorption:  r.CO2Absorption,
		CO2Tier:        r.CO2().Tier.String(),
		Description:    r.Description,
		Rating:         r.Rating,
	}
}
