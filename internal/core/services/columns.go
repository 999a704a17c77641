package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// columnIndex maps the plant columns to their positions in a header.
// A position of -1 means the header lacks the column.
type columnIndex struct {
	id             int
	name           int
	scientificName int
	o2             int
	co2            int
	rating         int
	descriptions   [2]int
}

// resolveColumns locates the plant columns in header by name.
// Names are matched case-insensitively after trimming spaces and a BOM.
// When a name repeats, the last occurrence wins.
func resolveColumns(header []string) columnIndex {
	cols := columnIndex{
		id:             -1,
		name:           -1,
		scientificName: -1,
		o2:             -1,
		co2:            -1,
		rating:         -1,
		descriptions:   [2]int{-1, -1},
	}

	for i, h := range header {
		switch normaliseHeader(h) {
		case normaliseHeader(domain.ColumnID):
			cols.id = i
		case normaliseHeader(domain.ColumnName):
			cols.name = i
		case normaliseHeader(domain.ColumnScientificName):
			cols.scientificName = i
		case normaliseHeader(domain.ColumnO2):
			cols.o2 = i
		case normaliseHeader(domain.ColumnCO2):
			cols.co2 = i
		case normaliseHeader(domain.ColumnRating):
			cols.rating = i
		case normaliseHeader(domain.ColumnDescription):
			cols.descriptions[0] = i
		case normaliseHeader(domain.ColumnDescriptionAlt):
			cols.descriptions[1] = i
		}
	}

	return cols
}

// columnPosition returns the position of name in header, or -1.
func columnPosition(header []string, name string) int {
	pos := -1
	want := normaliseHeader(name)
	for i, h := range header {
		if normaliseHeader(h) == want {
			pos = i
		}
	}
	return pos
}

func normaliseHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

// String lists the resolved positions for debug logging.
func (c columnIndex) String() string {
	return fmt.Sprintf("id=%d name=%d scientific=%d o2=%d co2=%d rating=%d description=%v",
		c.id, c.name, c.scientificName, c.o2, c.co2, c.rating, c.descriptions)
}

// record validates row and builds a Record from it.
func (c columnIndex) record(row []string) (domain.Record, error) {
	required := []struct {
		column string
		pos    int
	}{
		{domain.ColumnID, c.id},
		{domain.ColumnName, c.name},
		{domain.ColumnScientificName, c.scientificName},
		{domain.ColumnO2, c.o2},
		{domain.ColumnCO2, c.co2},
		{domain.ColumnRating, c.rating},
	}
	for _, req := range required {
		if _, ok := cell(row, req.pos); !ok {
			return domain.Record{}, fmt.Errorf("%w: %q", domain.ErrMissingField, req.column)
		}
	}

	name, _ := cell(row, c.name)
	if strings.TrimSpace(name) == "" {
		return domain.Record{}, fmt.Errorf("%w: %q is empty", domain.ErrMissingField, domain.ColumnName)
	}

	rawRating, _ := cell(row, c.rating)
	rating, err := parseRating(rawRating)
	if err != nil {
		return domain.Record{}, err
	}

	id, _ := cell(row, c.id)
	scientificName, _ := cell(row, c.scientificName)
	o2, _ := cell(row, c.o2)
	co2, _ := cell(row, c.co2)

	return domain.Record{
		ID:             id,
		Name:           name,
		ScientificName: scientificName,
		O2Release:      o2,
		CO2Absorption:  co2,
		Description:    c.description(row),
		Rating:         rating,
	}, nil
}

// description returns the first non-empty description column, or the
// placeholder.
func (c columnIndex) description(row []string) string {
	for _, pos := range c.descriptions {
		if desc, ok := cell(row, pos); ok && desc != "" {
			return desc
		}
	}
	return domain.PlaceholderDescription
}

// cell returns the value at pos and whether the row has it.
func cell(row []string, pos int) (string, bool) {
	if pos < 0 || pos >= len(row) {
		return "", false
	}
	return row[pos], true
}

// parseRating parses a rating as a float. NaN is rejected so that ratings
// always have a total order.
func parseRating(raw string) (float64, error) {
	rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(rating) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidRating, raw)
	}
	return rating, nil
}
