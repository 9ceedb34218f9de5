package booking

import (
	"context"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/audit"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/cache"
	domain "github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/booking"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/scheduling"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/httperr"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.Availability
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.Availability,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		slots: slots,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	salonID uint,
	staffID uint,
	bookingID uint,
) (*models.Booking, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForStaff(ctx, bookingID, staffID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := scheduling.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)
	uc.slots.Invalidate(ctx, salonID, staffID, startOfDay(b.StartTime, loc).Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &staffID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
