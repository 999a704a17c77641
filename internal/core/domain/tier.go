package domain

import (
	"math"
	"strconv"
	"strings"
)

// Tier is a discrete quality band derived from a measurement.
// It is a display classification and is never stored on a Record.
type Tier int

// Tiers from best to worst. TierUnknown marks an empty measurement.
const (
	TierUnknown Tier = iota
	TierBest
	TierGood
	TierMid
	TierLow
	TierBad
)

// String returns the string representation.
func (t Tier) String() string {
	switch t {
	case TierBest:
		return "best"
	case TierGood:
		return "good"
	case TierMid:
		return "mid"
	case TierLow:
		return "low"
	case TierBad:
		return "bad"
	default:
		return "unknown"
	}
}

// Scale holds the lower bounds for the Best, Good, Mid and Low tiers.
// Values below the last bound fall into TierBad.
type Scale struct {
	Name   string
	Bounds [4]float64
}

// Measurement scales used for plant readings.
var (
	// ScaleO2 bands oxygen release readings.
	ScaleO2 = Scale{Name: "o2", Bounds: [4]float64{4.0, 3.0, 2.0, 1.0}}

	// ScaleCO2 bands carbon dioxide absorption readings.
	ScaleCO2 = Scale{Name: "co2", Bounds: [4]float64{2.8, 2.1, 1.4, 0.7}}
)

// Band returns the tier for a numeric value on this scale.
func (s Scale) Band(v float64) Tier {
	for i, bound := range s.Bounds {
		if v >= bound {
			return TierBest + Tier(i)
		}
	}
	return TierBad
}

// Measurement is a parsed O2 or CO2 reading.
type Measurement struct {
	// Raw is the text as stored on the Record.
	Raw string

	// Value is the leading numeric token. Only meaningful when Numeric is true.
	Value float64

	// Numeric reports whether Raw started with a number.
	Numeric bool

	// Tier is the display band for this reading.
	Tier Tier
}

// keywordTiers is checked in order; the first keyword contained in the
// lowercased text wins.
var keywordTiers = []struct {
	keyword string
	tier    Tier
}{
	{"very high", TierBest},
	{"high", TierGood},
	{"moderate", TierMid},
}

// ParseMeasurement classifies raw in two stages. First the leading
// whitespace-separated token is parsed as a number and banded on scale.
// If that fails the lowercased text is matched against a fixed keyword
// table; unmatched text is TierBad and empty text is TierUnknown.
func ParseMeasurement(raw string, scale Scale) Measurement {
	m := Measurement{Raw: raw}

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		m.Tier = TierUnknown
		return m
	}

	if v, err := strconv.ParseFloat(fields[0], 64); err == nil && !math.IsNaN(v) {
		m.Value = v
		m.Numeric = true
		m.Tier = scale.Band(v)
		return m
	}

	text := strings.ToLower(raw)
	for _, kt := range keywordTiers {
		if strings.Contains(text, kt.keyword) {
			m.Tier = kt.tier
			return m
		}
	}

	m.Tier = TierBad
	return m
}
