package utils

import "time"

const DefaultDateFormat = "2006-01-02"

// ParseDate parses a date string using the default format.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DefaultDateFormat, dateStr)
}

// NextDay returns the day after the given date in the default format, or ""
// if the input does not parse.
func NextDay(dateStr string) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(DefaultDateFormat)
}

// Today returns the current date in the default format.
func Today() string {
	return time.Now().Format(DefaultDateFormat)
}
