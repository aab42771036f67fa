package utils

import (
	"strconv"
)

// ParseID parses a positive or zero 64-bit id from a path segment.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
