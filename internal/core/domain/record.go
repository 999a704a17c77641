package domain

import (
	"math"
	"strings"
)

// PlaceholderDescription is used when a source row carries no description.
const PlaceholderDescription = "No description available"

// Record represents one plant in the catalog.
// Records are values: the catalog hands out copies and nothing mutates
// a Record after the catalog builds it.
type Record struct {
	// ID is the identifier from the source. It is opaque and not
	// guaranteed to be unique.
	ID string

	// Name is the display name. Never empty after trimming.
	Name string

	// ScientificName is the secondary display name. May be empty.
	ScientificName string

	// O2Release is the oxygen release measurement, stored verbatim.
	O2Release string

	// CO2Absorption is the carbon dioxide absorption measurement, stored verbatim.
	CO2Absorption string

	// Description is free text, or PlaceholderDescription.
	Description string

	// Rating is the recommendation rating, expected within 0-5.
	Rating float64
}

// SearchText returns the lowercase name and scientific name joined by a
// single space. It is the only text substring queries match against.
func (r Record) SearchText() string {
	return strings.ToLower(r.Name) + " " + strings.ToLower(r.ScientificName)
}

// O2 parses the oxygen release measurement on the O2 scale.
func (r Record) O2() Measurement {
	return ParseMeasurement(r.O2Release, ScaleO2)
}

// CO2 parses the carbon dioxide absorption measurement on the CO2 scale.
func (r Record) CO2() Measurement {
	return ParseMeasurement(r.CO2Absorption, ScaleCO2)
}

// Stars returns the rating rounded half to even, clamped to 0-5.
func (r Record) Stars() int {
	stars := int(math.RoundToEven(r.Rating))
	switch {
	case math.IsNaN(r.Rating), stars < 0:
		return 0
	case stars > 5:
		return 5
	}
	return stars
}
