package utils

import (
	"net/url"
	"strconv"
)

// IntParam safely extracts an optional integer query parameter. Absent or
// non-numeric values yield nil rather than an error, so a malformed filter
// silently imposes no constraint.
func IntParam(values url.Values, key string) *int {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// PageParam extracts a zero-based page number; absent, non-numeric or
// negative values are treated as page 0.
func PageParam(values url.Values, key string) int {
	n := IntParam(values, key)
	if n == nil || *n < 0 {
		return 0
	}
	return *n
}
