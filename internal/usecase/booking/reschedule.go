package booking

import (
	"context"
	"time"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/audit"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/cache"
	domain "github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/booking"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/scheduling"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/httperr"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleBookingInput struct {
	SalonID   uint
	StaffID   uint
	BookingID uint

	// The dragged/resized interval from the calendar UI.
	NewStart time.Time
	NewEnd   time.Time
}

// ======================================================
// USE CASE
// ======================================================

// RescheduleBooking wraps the pure coordinator with snapshot loading and
// the optimistic-concurrency commit. Validation itself never touches
// storage; when the commit loses a version race the snapshot is
// re-fetched and validated once more before giving up.
type RescheduleBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.Availability
}

func NewRescheduleBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.Availability,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:  repo,
		audit: audit,
		slots: slots,
	}
}

// ======================================================
// EXECUTE
// ======================================================

const rescheduleAttempts = 2

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleBookingInput,
) (*models.Booking, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(salon.Timezone)

	newStart := in.NewStart.In(loc)
	newEnd := in.NewEnd.In(loc)

	var lastErr error

	for attempt := 0; attempt < rescheduleAttempts; attempt++ {
		current, err := uc.repo.GetBookingForStaff(ctx, in.BookingID, in.StaffID)
		if err != nil {
			return nil, httperr.ErrBusiness("booking_not_found")
		}

		if err := scheduling.CanReschedule(scheduling.Status(current.Status)); err != nil {
			return nil, err
		}

		shifts, err := uc.repo.ListShifts(ctx, in.StaffID)
		if err != nil {
			return nil, err
		}
		registry := scheduling.NewShiftRegistry(shifts)

		dayStart := startOfDay(newStart, loc)
		snapshot, err := uc.repo.ListBookingsForDay(
			ctx,
			in.StaffID,
			dayStart,
			dayStart.Add(24*time.Hour),
		)
		if err != nil {
			return nil, err
		}

		moved, err := scheduling.Reschedule(*current, newStart, newEnd, snapshot, registry)
		if err != nil {
			uc.audit.Dispatch(audit.Event{
				SalonID:  in.SalonID,
				Action:   "booking_reschedule_rejected",
				Entity:   "booking",
				EntityID: &current.ID,
				Metadata: map[string]any{
					"new_start": newStart,
					"new_end":   newEnd,
					"reason":    err.Error(),
				},
			})
			return current, err
		}

		committed, err := uc.repo.CommitReschedule(
			ctx,
			moved.ID,
			current.Version,
			moved.StartTime,
			moved.EndTime,
		)
		if err != nil {
			// Lost the version race: another writer changed this booking
			// between snapshot and commit. Re-fetch and re-validate.
			if httperr.IsBusiness(err, "stale_snapshot") {
				lastErr = err
				continue
			}
			return nil, err
		}

		oldDay := startOfDay(current.StartTime, loc).Format("2006-01-02")
		newDay := dayStart.Format("2006-01-02")
		uc.slots.Invalidate(ctx, in.SalonID, in.StaffID, oldDay)
		if newDay != oldDay {
			uc.slots.Invalidate(ctx, in.SalonID, in.StaffID, newDay)
		}

		uc.audit.Dispatch(audit.Event{
			SalonID:  in.SalonID,
			Action:   "booking_rescheduled",
			Entity:   "booking",
			EntityID: &committed.ID,
			Metadata: map[string]any{
				"old_start": current.StartTime,
				"old_end":   current.EndTime,
				"new_start": committed.StartTime,
				"new_end":   committed.EndTime,
			},
		})

		return committed, nil
	}

	return nil, lastErr
}
