package scheduling

import (
	"testing"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

func TestShiftsForSynthesizesDefaults(t *testing.T) {
	registry := NewShiftRegistry([]models.Shift{
		{StaffID: 1, Weekday: Monday, StartTime: "12:00", EndTime: "18:00", Active: true},
		{StaffID: 1, Weekday: Friday, StartTime: "10:00", EndTime: "14:00", Active: false},
	})

	week := registry.ShiftsFor(1)

	if len(week) != 7 {
		t.Fatalf("ShiftsFor returned %d days, want 7", len(week))
	}

	if week[Monday].StartTime != "12:00" || week[Monday].EndTime != "18:00" {
		t.Errorf("stored Monday shift = %v–%v, want 12:00–18:00", week[Monday].StartTime, week[Monday].EndTime)
	}
	if week[Friday].Active {
		t.Error("stored inactive Friday shift must stay inactive")
	}

	// Weekdays with no stored row get the default window.
	for _, day := range []int{Saturday, Sunday, Tuesday, Wednesday, Thursday} {
		got := week[day]
		if got.StartTime != DefaultShiftStart || got.EndTime != DefaultShiftEnd || !got.Active {
			t.Errorf("synthesized shift for weekday %d = %+v, want %s–%s active", day, got, DefaultShiftStart, DefaultShiftEnd)
		}
		if got.Weekday != day {
			t.Errorf("synthesized shift weekday = %d, want %d", got.Weekday, day)
		}
	}
}

func TestShiftRegistryDuplicatesLastWriteWins(t *testing.T) {
	registry := NewShiftRegistry([]models.Shift{
		{StaffID: 5, Weekday: Saturday, StartTime: "08:00", EndTime: "12:00", Active: true},
		{StaffID: 5, Weekday: Saturday, StartTime: "14:00", EndTime: "22:00", Active: true},
	})

	got := registry.ShiftsFor(5)[Saturday]
	if got.StartTime != "14:00" || got.EndTime != "22:00" {
		t.Errorf("duplicate weekday resolved to %v–%v, want 14:00–22:00 (last write wins)", got.StartTime, got.EndTime)
	}
}

func TestIsWithinShift(t *testing.T) {
	registry := NewShiftRegistry([]models.Shift{
		{StaffID: 1, Weekday: Saturday, StartTime: "10:00", EndTime: "20:00", Active: true},
		{StaffID: 1, Weekday: Friday, StartTime: "10:00", EndTime: "20:00", Active: false},
		{StaffID: 2, Weekday: Saturday, StartTime: "xx:yy", EndTime: "20:00", Active: true},
	})

	tests := []struct {
		name       string
		staffID    uint
		weekday    int
		start, end int
		want       bool
	}{
		{"inside shift", 1, Saturday, 10 * 60, 10*60 + 30, true},
		{"exact shift window", 1, Saturday, 10 * 60, 20 * 60, true},
		{"one minute early", 1, Saturday, 10*60 - 1, 10*60 + 29, false},
		{"runs past end", 1, Saturday, 19*60 + 45, 20*60 + 15, false},
		{"inactive day", 1, Friday, 12 * 60, 13 * 60, false},
		{"synthesized default day", 1, Sunday, 10 * 60, 11 * 60, true},
		{"before default window", 1, Sunday, 9 * 60, 10 * 60, false},
		{"unknown staff uses defaults", 9, Monday, 11 * 60, 12 * 60, true},
		{"malformed stored clock", 2, Saturday, 11 * 60, 12 * 60, false},
		{"weekday out of range", 1, 7, 11 * 60, 12 * 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := registry.IsWithinShift(tt.staffID, tt.weekday, tt.start, tt.end)
			if got != tt.want {
				t.Errorf("IsWithinShift(%d, %d, %d, %d) = %v, want %v",
					tt.staffID, tt.weekday, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSetShift(t *testing.T) {
	registry := NewShiftRegistry(nil)

	if err := registry.SetShift(1, Saturday, "09:00", "17:00", true); err != nil {
		t.Fatalf("SetShift(valid) = %v, want nil", err)
	}
	if got := registry.ShiftsFor(1)[Saturday]; got.StartTime != "09:00" {
		t.Errorf("SetShift did not store the shift: %+v", got)
	}

	// Upsert replaces the previous definition.
	if err := registry.SetShift(1, Saturday, "11:00", "19:00", true); err != nil {
		t.Fatalf("SetShift(upsert) = %v, want nil", err)
	}
	if got := registry.ShiftsFor(1)[Saturday]; got.StartTime != "11:00" || got.EndTime != "19:00" {
		t.Errorf("upsert result = %v–%v, want 11:00–19:00", got.StartTime, got.EndTime)
	}

	errTests := []struct {
		name       string
		weekday    int
		start, end string
		active     bool
		wantErr    bool
	}{
		{"start equals end", Monday, "10:00", "10:00", true, true},
		{"start after end", Monday, "18:00", "10:00", true, true},
		{"minutes not lexical", Monday, "9:00", "10:00", true, false},
		{"garbage clock", Monday, "ten", "10:00", true, true},
		{"hour out of range", Monday, "24:00", "26:00", true, true},
		{"weekday negative", -1, "10:00", "12:00", true, true},
		{"weekday too large", 7, "10:00", "12:00", true, true},
		{"inactive skips time check", Tuesday, "", "", false, false},
	}

	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			err := registry.SetShift(1, tt.weekday, tt.start, tt.end, tt.active)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetShift(%d, %q, %q, %v) error = %v, wantErr %v",
					tt.weekday, tt.start, tt.end, tt.active, err, tt.wantErr)
			}
			if err != nil && !IsValidation(err) {
				t.Errorf("SetShift error %v is not a ValidationError", err)
			}
		})
	}
}
