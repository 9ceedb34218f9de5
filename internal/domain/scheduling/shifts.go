package scheduling

import (
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

// Staff created before shift data existed have no stored rows; every
// missing weekday is treated as this default window.
const (
	DefaultShiftStart = "10:00"
	DefaultShiftEnd   = "20:00"
)

// ShiftRegistry owns the weekly shift templates for staff members.
// Exactly one shift per (staff, weekday) is canonical; when the stored
// rows carry duplicates the last one wins.
type ShiftRegistry struct {
	shifts map[uint]map[int]models.Shift
}

func NewShiftRegistry(stored []models.Shift) *ShiftRegistry {
	r := &ShiftRegistry{shifts: make(map[uint]map[int]models.Shift)}

	for _, s := range stored {
		if s.Weekday < 0 || s.Weekday > 6 {
			continue
		}
		week := r.shifts[s.StaffID]
		if week == nil {
			week = make(map[int]models.Shift, 7)
			r.shifts[s.StaffID] = week
		}
		week[s.Weekday] = s
	}

	return r
}

// ValidateShift checks one shift definition the way SetShift does, so
// write paths can reject malformed input before persisting anything.
func ValidateShift(weekday int, start, end string, active bool) error {
	if weekday < 0 || weekday > 6 {
		return &ValidationError{Code: "invalid_weekday"}
	}

	if !active {
		return nil
	}

	startMin, err := parseClock(start)
	if err != nil {
		return &ValidationError{Code: "invalid_shift_time"}
	}
	endMin, err := parseClock(end)
	if err != nil {
		return &ValidationError{Code: "invalid_shift_time"}
	}

	// Compared as minutes, not lexically: "9:00" < "10:00" holds here.
	if startMin >= endMin {
		return &ValidationError{Code: "shift_start_not_before_end"}
	}

	return nil
}

// SetShift upserts one weekday shift for a staff member.
func (r *ShiftRegistry) SetShift(staffID uint, weekday int, start, end string, active bool) error {
	if err := ValidateShift(weekday, start, end, active); err != nil {
		return err
	}

	week := r.shifts[staffID]
	if week == nil {
		week = make(map[int]models.Shift, 7)
		r.shifts[staffID] = week
	}

	week[weekday] = models.Shift{
		StaffID:   staffID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Active:    active,
	}

	return nil
}

// ShiftsFor returns the full 7-day plan for a staff member, index
// 0=Saturday, synthesizing the default window for missing weekdays.
func (r *ShiftRegistry) ShiftsFor(staffID uint) [7]models.Shift {
	var week [7]models.Shift

	stored := r.shifts[staffID]
	for day := 0; day < 7; day++ {
		if s, ok := stored[day]; ok {
			week[day] = s
			continue
		}
		week[day] = models.Shift{
			StaffID:   staffID,
			Weekday:   day,
			StartTime: DefaultShiftStart,
			EndTime:   DefaultShiftEnd,
			Active:    true,
		}
	}

	return week
}

// IsWithinShift reports whether [startMinute, endMinute) fits entirely
// inside the staff member's active shift for that weekday. An inactive
// shift makes the whole day unavailable.
func (r *ShiftRegistry) IsWithinShift(staffID uint, weekday, startMinute, endMinute int) bool {
	if weekday < 0 || weekday > 6 {
		return false
	}

	shift := r.ShiftsFor(staffID)[weekday]
	if !shift.Active {
		return false
	}

	shiftStart, err := parseClock(shift.StartTime)
	if err != nil {
		return false
	}
	shiftEnd, err := parseClock(shift.EndTime)
	if err != nil {
		return false
	}

	return shiftStart <= startMinute && endMinute <= shiftEnd
}
