package utils

import "time"

// FormatTime converts a 24-hour "HH:MM" slot time to a 12-hour display
// string like "2:00 PM". Unparseable input is returned unchanged.
func FormatTime(t string) string {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return t
	}
	return parsed.Format("3:04 PM")
}

// FormatDate renders a "YYYY-MM-DD" date as "January 2, 2006" for display.
// Unparseable input is returned unchanged.
func FormatDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("January 2, 2006")
}
