package driving

import (
	"context"

	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// CatalogService provides read access to the plant catalog.
// Query methods never fail; an empty catalog yields empty slices.
type CatalogService interface {
	// TopN returns the n highest-rated records, ties broken by name.
	TopN(n int) []domain.Record

	// AllSorted returns every record by name, or by rating then name.
	AllSorted(byRating bool) []domain.Record

	// Search returns records whose search text contains query.
	// An empty query returns the top 10.
	Search(query string) []domain.Record

	// SearchAll returns records whose search text contains query.
	// An empty query returns every record by name.
	SearchAll(query string) []domain.Record

	// Suggest returns record names that fuzzily match query.
	Suggest(query string, limit int) []string

	// Stats describes the current catalog.
	Stats() domain.CatalogStats

	// Reload rebuilds the catalog from its source and swaps it in.
	Reload(ctx context.Context) domain.CatalogStats
}
