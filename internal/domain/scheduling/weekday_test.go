package scheduling

import (
	"testing"
	"time"
)

func TestWeekdayIndex(t *testing.T) {
	// 2026-01-24 is a Saturday.
	base := time.Date(2026, time.January, 24, 12, 0, 0, 0, testLoc)

	want := []int{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}
	for i, w := range want {
		d := base.AddDate(0, 0, i)
		if got := WeekdayIndex(d); got != w {
			t.Errorf("WeekdayIndex(%v) = %d, want %d", d.Weekday(), got, w)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(Saturday); got != "شنبه" {
		t.Errorf("WeekdayName(Saturday) = %q, want شنبه", got)
	}
	if got := WeekdayName(Friday); got != "جمعه" {
		t.Errorf("WeekdayName(Friday) = %q, want جمعه", got)
	}
	if got := WeekdayName(7); got != "" {
		t.Errorf("WeekdayName(7) = %q, want empty", got)
	}
}

func TestDateLabelFor(t *testing.T) {
	d := time.Date(2026, time.January, 24, 0, 0, 0, 0, testLoc)
	if got := DateLabelFor(d); got != "شنبه 24" {
		t.Errorf("DateLabelFor = %q, want شنبه 24", got)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"10:00", 600, false},
		{"23:59", 1439, false},
		{"9:05", 545, false},
		{" 10:30 ", 630, false},
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"-1:00", 0, true},
		{"ten", 0, true},
		{"", 0, true},
		{"10", 0, true},
	}

	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
