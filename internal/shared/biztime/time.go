// Package biztime centralizes business clock access.
// All storage and transport use UTC; implicit Local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatRFC3339 formats a time in RFC3339 for API responses.
func FormatRFC3339(t time.Time) string {
	return t.Format(time.RFC3339)
}
