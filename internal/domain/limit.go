package domain

// MaxListLimit caps the number of rows a read-through list may return.
const MaxListLimit = 100

// NewListLimit resolves an optional ?limit= value.
// Nil or non-positive values fall back to def; larger values are capped.
func NewListLimit(limit *int, def int) int {
	n := def
	if limit != nil && *limit >= 1 {
		n = *limit
	}
	if n > MaxListLimit {
		n = MaxListLimit
	}
	return n
}
