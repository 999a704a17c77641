package driving

import (
	"context"

	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// DatasetService provides offline maintenance of plant tables.
type DatasetService interface {
	// Dedupe copies the table at in to out, dropping rows whose name
	// repeats an earlier row and renumbering identifiers from 1.
	Dedupe(ctx context.Context, in, out string) (*domain.DedupeReport, error)
}
