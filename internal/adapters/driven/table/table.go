package table

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// DefaultTable is the table read when a location names none.
const DefaultTable = "plants"

// SplitLocation splits "path?table=name" into path and table name.
// The table defaults to DefaultTable.
func SplitLocation(rest string) (path, tableName string, err error) {
	path, rawQuery, _ := strings.Cut(rest, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	tableName = query.Get("table")
	if tableName == "" {
		tableName = DefaultTable
	}
	return path, tableName, nil
}

// QuoteIdent quotes name as an SQL identifier.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Pad returns row as n query arguments. Missing cells become NULL and
// extra cells are dropped.
func Pad(row []string, n int) []any {
	args := make([]any, n)
	for i := range args {
		if i < len(row) {
			args[i] = row[i]
		}
	}
	return args
}

// Cells renders database values as text. NULL becomes the empty string.
func Cells(values []any) []string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = cellText(v)
	}
	return cells
}

func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
