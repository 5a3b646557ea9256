package infer

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// detectFormat probes the string against the supported formats and returns
// the first match, or "" when none applies.
//
// Supported formats, in precedence order:
//   - integer: the whole string is a signed 32-bit integer literal
//   - date: a valid YYYY-MM-DD calendar date
//   - date-time: an RFC 3339 timestamp
//
// Order matters: "1" is an integer, not a truncated date, and a bare date
// wins before the full timestamp parser runs.
func detectFormat(s string) string {
	if _, err := strconv.ParseInt(s, 10, 32); err == nil {
		return "integer"
	}
	if _, err := time.Parse(dateLayout, s); err == nil {
		return "date"
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return "date-time"
	}
	return ""
}
