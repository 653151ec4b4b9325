package utils

import "time"

// displayTimestampLayout is the fixed, locale-independent format the admin
// screens and reports expect, e.g. "06/01/2024 10:00 AM".
const displayTimestampLayout = "01/02/2006 03:04 PM"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(displayTimestampLayout)
}

// FormatClock renders an "HH:MM" 24h time as a 12h clock string, e.g.
// "14:30" -> "2:30 PM". Unparseable input is returned unchanged.
func FormatClock(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}
