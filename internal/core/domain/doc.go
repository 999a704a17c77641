// Package domain defines the core business entities for leafdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: One plant entry in the catalog
//   - Measurement: A parsed O2/CO2 reading with its display Tier
//   - CatalogStats: What the last catalog load produced
//   - AppSettings: User-facing configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
