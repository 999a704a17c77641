// Package services implements the driving port interfaces.
// Services hold the catalog logic and orchestrate calls to driven
// ports (adapters).
//
// Services are pure Go with no CGO. Load identifiers come from
// google/uuid and name suggestions from sahilm/fuzzy.
package services
