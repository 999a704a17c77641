package mcp

import (
	"context"
	"strings"

	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driving"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
// It records the arguments of the last call.
type mockCatalogService struct {
	records     []domain.Record
	suggestions []string
	stats       domain.CatalogStats

	lastN        int
	lastQuery    string
	lastByRating bool
	lastLimit    int
	calls        []string
}

var _ driving.CatalogService = (*mockCatalogService)(nil)

func (m *mockCatalogService) TopN(n int) []domain.Record {
	m.calls = append(m.calls, "TopN")
	m.lastN = n
	if n < len(m.records) {
		return m.records[:n]
	}
	return m.records
}

func (m *mockCatalogService) AllSorted(byRating bool) []domain.Record {
	m.calls = append(m.calls, "AllSorted")
	m.lastByRating = byRating
	return m.records
}

func (m *mockCatalogService) Search(query string) []domain.Record {
	m.calls = append(m.calls, "Search")
	m.lastQuery = query
	return m.filter(query)
}

func (m *mockCatalogService) SearchAll(query string) []domain.Record {
	m.calls = append(m.calls, "SearchAll")
	m.lastQuery = query
	return m.filter(query)
}

func (m *mockCatalogService) filter(query string) []domain.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []domain.Record{}
	for _, r := range m.records {
		if strings.Contains(r.SearchText(), q) {
			out = append(out, r)
		}
	}
	return out
}

func (m *mockCatalogService) Suggest(query string, limit int) []string {
	m.calls = append(m.calls, "Suggest")
	m.lastQuery = query
	m.lastLimit = limit
	return m.suggestions
}

func (m *mockCatalogService) Stats() domain.CatalogStats {
	return m.stats
}

func (m *mockCatalogService) Reload(_ context.Context) domain.CatalogStats {
	return m.stats
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

var _ driving.SettingsService = (*mockSettingsService)(nil)

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return m.err
}

func (m *mockSettingsService) SetLocation(location string) error {
	m.settings.Catalog.Location = location
	return m.err
}

func (m *mockSettingsService) SetColorMode(mode domain.ColorMode) error {
	m.settings.Output.Color = mode
	return m.err
}

func (m *mockSettingsService) ResolveLocation() string {
	return m.settings.Catalog.Location
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func testRecords() []domain.Record {
	return []domain.Record{
		{ID: "1", Name: "Snake Plant", ScientificName: "Dracaena trifasciata",
			O2Release: "4.5 ml/day", CO2Absorption: "High", Description: "Hardy", Rating: 4.8},
		{ID: "2", Name: "Peace Lily", ScientificName: "Spathiphyllum",
			O2Release: "Moderate", CO2Absorption: "1.0", Description: "Shade tolerant", Rating: 4.1},
		{ID: "3", Name: "Boston Fern", ScientificName: "Nephrolepis exaltata",
			O2Release: "", CO2Absorption: "Low", Description: "Likes humidity", Rating: 3.2},
	}
}
