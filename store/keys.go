package store

import "strings"

func lower(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Key normalizes a city or category path segment the way the store keys
// are written: trimmed and lowercase.
func Key(segment string) string {
	return lower(segment)
}
