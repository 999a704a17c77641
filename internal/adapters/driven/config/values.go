// Package config holds helpers shared by the ConfigStore adapters.
//
// Values reach a store from TOML (int64, bool, string) or from
// `leafdex config set` (always string). The helpers coerce both.
package config

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// String returns v as a string, or "" when v is not a string.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Int returns v as an int, or 0 when v cannot be read as a whole number.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n != math.Trunc(n) {
			return 0
		}
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// Bool returns v as a bool, or false when v cannot be read as one.
func Bool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	default:
		return false
	}
}

// Flatten converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func Flatten(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range Flatten(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// Nest is the inverse of Flatten: {"a.b": 1} becomes {"a": {"b": 1}}.
// Keys are placed in sorted order. A key that collides with an existing
// value or table stays at the top level under its full dotted name.
func Nest(flat map[string]any) map[string]any {
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make(map[string]any)
	for _, key := range keys {
		if !place(result, strings.Split(key, "."), flat[key]) {
			result[key] = flat[key]
		}
	}
	return result
}

// place stores value at path below node, creating tables as needed.
// It reports false on a collision.
func place(node map[string]any, path []string, value any) bool {
	last := len(path) - 1
	for _, part := range path[:last] {
		next, exists := node[part]
		if !exists {
			child := make(map[string]any)
			node[part] = child
			node = child
			continue
		}
		child, isTable := next.(map[string]any)
		if !isTable {
			return false
		}
		node = child
	}
	if _, exists := node[path[last]]; exists {
		return false
	}
	node[path[last]] = value
	return true
}
