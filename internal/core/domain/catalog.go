package domain

import "time"

// Column header names recognised in plant tables.
const (
	ColumnID             = "Plant ID"
	ColumnName           = "Plant Name"
	ColumnScientificName = "Plant Scientific Name"
	ColumnO2             = "Plant O2 Release Data"
	ColumnCO2            = "Plant CO Absorb Data"
	ColumnDescription    = "Short Description of Plant"
	ColumnDescriptionAlt = "Short Description of the plant"
	ColumnRating         = "Recommendation Rating out of 5"
)

// DefaultTopN is the number of records the "top picks" views show.
const DefaultTopN = 10

// CatalogStats describes the outcome of a catalog load.
type CatalogStats struct {
	// Location is the source the catalog was loaded from.
	Location string

	// LoadID identifies one load run. Diagnostics of the same run carry it.
	LoadID string

	// Loaded is the number of records accepted.
	Loaded int

	// Skipped is the number of rows rejected.
	Skipped int

	// SourceAvailable is false when the source could not be opened at all.
	SourceAvailable bool

	// Cancelled is true when the context ended the load before the end of
	// the table. Loaded then counts only the rows read so far.
	Cancelled bool

	// LoadedAt is when the load finished.
	LoadedAt time.Time
}

// SkippedRow describes a row rejected during a load.
type SkippedRow struct {
	// LoadID identifies the load run.
	LoadID string

	// Line is the 1-based line of the row in the source, header included.
	Line int

	// Cells holds the raw row contents.
	Cells []string

	// Reason wraps ErrMissingField, ErrInvalidRating or a read error.
	Reason error
}

// DedupeReport summarises a dataset deduplication.
type DedupeReport struct {
	// Read is the number of data rows read.
	Read int

	// Written is the number of rows written.
	Written int

	// Dropped holds the names of rows dropped as duplicates, in source order.
	Dropped []string
}
