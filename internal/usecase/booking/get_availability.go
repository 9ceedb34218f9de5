package booking

import (
	"context"
	"time"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/cache"
	domain "github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/booking"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/scheduling"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	slots *cache.Availability
}

func NewGetAvailability(repo domain.Repository, slots *cache.Availability) *GetAvailability {
	return &GetAvailability{repo: repo, slots: slots}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	svc, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	dateKey := in.Date.Format("2006-01-02")
	if cached, ok := uc.slots.Get(ctx, in.SalonID, in.StaffID, svc.ID, dateKey); ok {
		return cached, nil
	}

	shifts, err := uc.repo.ListShifts(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}
	registry := scheduling.NewShiftRegistry(shifts)

	weekday := scheduling.WeekdayIndex(in.Date)
	shift := registry.ShiftsFor(in.StaffID)[weekday]
	if !shift.Active {
		return []domain.TimeSlot{}, nil
	}

	loc := in.Date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(shift.StartTime)
	dayEnd := parseHM(shift.EndTime)

	bookings, err := uc.repo.ListBookingsForDay(
		ctx,
		in.StaffID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(svc.DurationMin) * time.Minute
	if slotDuration <= 0 {
		slotDuration = scheduling.DefaultDurationMinutes * time.Minute
	}
	slots := []domain.TimeSlot{}

	bkIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		// skip bookings that ended before this slot
		for bkIdx < len(bookings) && !bookings[bkIdx].EndTime.After(slotStart) {
			bkIdx++
		}

		conflict := false
		if bkIdx < len(bookings) {
			b := bookings[bkIdx]
			if slotStart.Before(b.EndTime) && b.StartTime.Before(slotEnd) {
				conflict = true
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	uc.slots.Set(ctx, in.SalonID, in.StaffID, svc.ID, dateKey, slots)

	return slots, nil
}
