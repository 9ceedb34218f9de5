package scheduling

import (
	"time"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

// Reschedule applies a drag-drop move to a booking value.
//
// The attempt either validates fully and returns a copy with the new
// interval, or is rejected and returns the original booking untouched
// alongside the conflict error. The function is pure: same inputs and
// snapshot, same outcome. It never persists and never retries; a
// rejection is terminal for the attempt and the caller may resubmit a
// different interval.
func Reschedule(
	booking models.Booking,
	newStart time.Time,
	newEnd time.Time,
	snapshot []models.Booking,
	registry *ShiftRegistry,
) (models.Booking, error) {

	err := CheckConflicts(
		registry,
		booking.StaffID,
		newStart,
		newEnd,
		booking.ID,
		snapshot,
	)
	if err != nil {
		return booking, err
	}

	moved := booking
	moved.StartTime = newStart
	moved.EndTime = newEnd
	return moved, nil
}
