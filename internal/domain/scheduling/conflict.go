package scheduling

import (
	"time"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

// CheckConflicts validates a candidate [start, end) interval for a staff
// member against the supplied booking snapshot. Pure: no side effects,
// no I/O; the caller supplies an already-salon-scoped snapshot.
//
// Rules run in a fixed order and the first failure wins:
//  1. the interval must not be degenerate,
//  2. it must not cross midnight (shifts are single-day),
//  3. it must fit inside the staff member's active shift,
//  4. it must not overlap any non-cancelled booking (half-open, so
//     back-to-back bookings touching at the boundary are legal).
//
// excludeID removes the booking being rescheduled from its own overlap
// set; pass 0 when creating.
func CheckConflicts(
	registry *ShiftRegistry,
	staffID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
	existing []models.Booking,
) error {

	if !start.Before(end) {
		return &ConflictError{Code: ConflictDegenerateInterval}
	}

	startMinute, endMinute, ok := sameDayMinutes(start, end)
	if !ok {
		return &ConflictError{Code: ConflictCrossesDayBoundary}
	}

	weekday := WeekdayIndex(start)
	if !registry.IsWithinShift(staffID, weekday, startMinute, endMinute) {
		return &ConflictError{Code: ConflictOutsideShift}
	}

	for _, b := range existing {
		if b.ID == excludeID && excludeID != 0 {
			continue
		}
		if b.StaffID != staffID {
			continue
		}
		if b.Status == string(StatusCancelled) {
			continue
		}

		if start.Before(b.EndTime) && b.StartTime.Before(end) {
			return errOverlap(b.ID)
		}
	}

	return nil
}

// sameDayMinutes maps both endpoints to minutes-of-day on start's
// calendar date. An end exactly at the next midnight counts as minute
// 1440 of the same day; anything past that crosses the boundary.
func sameDayMinutes(start, end time.Time) (startMinute, endMinute int, ok bool) {
	startMinute = start.Hour()*60 + start.Minute()

	sy, sm, sd := start.Date()
	ey, em, ed := end.In(start.Location()).Date()

	if sy == ey && sm == em && sd == ed {
		return startMinute, end.Hour()*60 + end.Minute(), true
	}

	nextMidnight := time.Date(sy, sm, sd, 0, 0, 0, 0, start.Location()).AddDate(0, 0, 1)
	if end.Equal(nextMidnight) {
		return startMinute, 24 * 60, true
	}

	return 0, 0, false
}
