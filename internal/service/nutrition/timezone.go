package nutrition

import "time"

// DayStart returns midnight of the day containing t in tz, converted to UTC.
func DayStart(t time.Time, tz *time.Location) time.Time {
	local := t.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// NextDayStart returns midnight of the day after the one containing t in tz,
// converted to UTC.
func NextDayStart(t time.Time, tz *time.Location) time.Time {
	// AddDate handles DST correctly, Add(24h) does not
	next := DayStart(t, tz).In(tz).AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, tz).UTC()
}

// ParseTimezone parses a timezone name, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// dayKey identifies a calendar day in tz.
func dayKey(t time.Time, tz *time.Location) string {
	return t.In(tz).Format(time.DateOnly)
}
