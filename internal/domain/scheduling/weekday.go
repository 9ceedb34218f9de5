package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ===============================
// Weekday convention
// ===============================

// Weekday indexes are Saturday-first (0=Saturday … 6=Friday) to match the
// regional working week. Display locale never leaks into these indexes;
// conversion from Go's Sunday-first weekday happens here and nowhere else.
const (
	Saturday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayNames = [7]string{
	"شنبه",
	"یکشنبه",
	"دوشنبه",
	"سه‌شنبه",
	"چهارشنبه",
	"پنجشنبه",
	"جمعه",
}

// WeekdayIndex maps a timestamp to the Saturday-first weekday index.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 1) % 7
}

// WeekdayName returns the Persian weekday name used by legacy date labels.
func WeekdayName(index int) string {
	if index < 0 || index > 6 {
		return ""
	}
	return weekdayNames[index]
}

// DateLabelFor renders the legacy "<weekday> <day-of-month>" label for a date.
func DateLabelFor(t time.Time) string {
	return fmt.Sprintf("%s %d", weekdayNames[WeekdayIndex(t)], t.Day())
}

// parseClock converts an "HH:MM" clock string to minutes since midnight.
func parseClock(hm string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(hm), ":")
	if !ok {
		return 0, fmt.Errorf("malformed clock %q", hm)
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("malformed clock %q", hm)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("malformed clock %q", hm)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range", hm)
	}

	return h*60 + m, nil
}
