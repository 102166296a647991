package calendar

import (
	"fmt"
	"time"
)

const (
	dateLayout   = "2006-01-02"
	minutesInDay = 24 * 60
)

// FormatDate renders t as "YYYY-MM-DD" using its local calendar fields.
// Going through the local fields rather than UTC avoids the off-by-one-day
// shift for users near a UTC boundary.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "YYYY-MM-DD" string into local midnight. Malformed
// input yields the zero time; callers validate dates at the form boundary.
func ParseDate(s string) time.Time {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// TimeToMinutes converts "HH:MM" to minutes from midnight. Assumes a
// well-formed input; anything else counts as 00:00.
func TimeToMinutes(s string) int {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

// MinutesToTime converts minutes from midnight back to zero-padded "HH:MM".
func MinutesToTime(mins int) string {
	mins = ((mins % minutesInDay) + minutesInDay) % minutesInDay
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// AddMinutes adds a positive number of minutes to a "HH:MM" time of day,
// wrapping around midnight.
func AddMinutes(t string, minutes int) string {
	return MinutesToTime(TimeToMinutes(t) + minutes)
}

// ValidTime reports whether s is a well-formed 24-hour "HH:MM" string.
func ValidTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return false
	}
	return h >= 0 && h < 24 && m >= 0 && m < 60
}

// ValidDate reports whether s is a well-formed "YYYY-MM-DD" string.
func ValidDate(s string) bool {
	_, err := time.ParseInLocation(dateLayout, s, time.Local)
	return err == nil
}
