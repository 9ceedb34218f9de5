package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

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

// CreateBookingInput accepts all three intake shapes. Exactly one of
// them should be populated: Date+Time (dashboard form), StartAt+EndAt
// (already-canonical timestamps), or DateLabel+TimeLabel (legacy
// label-based records). The last two go through the interval resolver.
type CreateBookingInput struct {
	SalonID uint
	StaffID uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceID uint

	Date string // "2006-01-02"
	Time string // "15:04"

	StartAt string // RFC 3339
	EndAt   string // RFC 3339

	DateLabel string
	TimeLabel string

	Notes string

	InitialStatus     scheduling.Status
	EnforceMinAdvance bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.Availability
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.Availability,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		slots: slots,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(salon.Timezone)

	svc, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	interval, err := uc.resolveInterval(ctx, in, salon, svc, loc)
	if err != nil {
		return nil, err
	}

	if in.EnforceMinAdvance {
		minAdvance := salon.MinAdvanceMinutes
		if minAdvance <= 0 {
			minAdvance = 120
		}

		now := timezone.NowIn(salon.Timezone)
		if interval.Start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	shifts, err := uc.repo.ListShifts(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}
	registry := scheduling.NewShiftRegistry(shifts)

	dayStart := startOfDay(interval.Start, loc)
	snapshot, err := uc.repo.ListBookingsForDay(
		ctx,
		in.StaffID,
		dayStart,
		dayStart.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	if err := scheduling.CheckConflicts(
		registry,
		in.StaffID,
		interval.Start,
		interval.End,
		0,
		snapshot,
	); err != nil {
		uc.audit.Dispatch(audit.Event{
			SalonID: in.SalonID,
			Action:  "booking_conflict",
			Entity:  "booking",
			Metadata: map[string]any{
				"staff_id": in.StaffID,
				"start":    interval.Start,
				"end":      interval.End,
				"reason":   err.Error(),
			},
		})
		return nil, err
	}

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.SalonID,
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerEmail,
	)
	if err != nil {
		return nil, err
	}

	status := in.InitialStatus
	if status == "" {
		status = scheduling.StatusConfirmed
	}

	b := &models.Booking{
		Reference:  uuid.NewString(),
		SalonID:    in.SalonID,
		StaffID:    in.StaffID,
		CustomerID: customer.ID,
		ServiceID:  svc.ID,
		StartTime:  interval.Start,
		EndTime:    interval.End,
		Status:     string(status),
		DateLabel:  in.DateLabel,
		TimeLabel:  in.TimeLabel,
		Version:    1,
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, in.SalonID, in.StaffID, dayStart.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// resolveInterval normalizes whichever intake shape arrived into one
// canonical [start, end) in the salon timezone.
func (uc *CreateBooking) resolveInterval(
	ctx context.Context,
	in CreateBookingInput,
	salon *models.Salon,
	svc *models.Service,
	loc *time.Location,
) (scheduling.Interval, error) {

	if in.Date != "" && in.Time != "" {
		start, err := time.ParseInLocation(
			"2006-01-02 15:04",
			in.Date+" "+in.Time,
			loc,
		)
		if err != nil {
			return scheduling.Interval{}, httperr.ErrBusiness("invalid_date_or_time")
		}

		end := start.Add(time.Duration(svc.DurationMin) * time.Minute)
		return scheduling.Interval{Start: start, End: end}, nil
	}

	services, err := uc.repo.ListServices(ctx, in.SalonID)
	if err != nil {
		return scheduling.Interval{}, err
	}
	catalog := scheduling.NewServiceCatalog(services)

	resolver := scheduling.NewIntervalResolver(
		loc,
		timezone.NowIn(salon.Timezone),
		scheduling.DefaultHorizonDays,
	)

	return resolver.Resolve(scheduling.BookingRecord{
		StartAt:     in.StartAt,
		EndAt:       in.EndAt,
		DateLabel:   in.DateLabel,
		TimeLabel:   in.TimeLabel,
		ServiceName: svc.Name,
	}, catalog)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
