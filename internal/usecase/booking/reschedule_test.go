package booking

import (
	"context"
	"testing"
	"time"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/audit"
	domain "github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/booking"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/scheduling"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/httperr"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

// fakeRepo is an in-memory Repository for exercising the reschedule
// orchestration, including the optimistic-concurrency retry.
type fakeRepo struct {
	salon    models.Salon
	shifts   []models.Shift
	bookings map[uint]*models.Booking

	// staleCommits makes the first N commits fail as lost races.
	staleCommits int
	commits      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon:    models.Salon{ID: 1, Slug: "ayneh", Timezone: "UTC"},
		bookings: make(map[uint]*models.Booking),
	}
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	s := f.salon
	return &s, nil
}

func (f *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	s := f.salon
	return &s, nil
}

func (f *fakeRepo) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	return &models.Service{ID: serviceID, SalonID: salonID, Name: "هیرکات", DurationMin: 30}, nil
}

func (f *fakeRepo) ListServices(_ context.Context, salonID uint) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeRepo) GetOrCreateCustomer(_ context.Context, salonID uint, name, phone, email string) (*models.Customer, error) {
	return &models.Customer{ID: 1, SalonID: salonID, Name: name, Phone: phone}, nil
}

func (f *fakeRepo) ListShifts(_ context.Context, staffID uint) ([]models.Shift, error) {
	return f.shifts, nil
}

func (f *fakeRepo) ReplaceShifts(_ context.Context, staffID uint, shifts []models.Shift) error {
	f.shifts = shifts
	return nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) GetBookingForStaff(_ context.Context, bookingID, staffID uint) (*models.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok || b.StaffID != staffID {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) ListBookingsForDay(_ context.Context, staffID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.StaffID != staffID || b.Status == string(scheduling.StatusCancelled) {
			continue
		}
		if b.StartTime.Before(end) && start.Before(b.EndTime) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForPeriod(ctx context.Context, staffID uint, start, end time.Time) ([]models.Booking, error) {
	return f.ListBookingsForDay(ctx, staffID, start, end)
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeRepo) CommitReschedule(_ context.Context, bookingID uint, version int, start, end time.Time) (*models.Booking, error) {
	f.commits++
	if f.commits <= f.staleCommits {
		return nil, httperr.ErrBusiness("stale_snapshot")
	}

	b, ok := f.bookings[bookingID]
	if !ok || b.Version != version {
		return nil, httperr.ErrBusiness("stale_snapshot")
	}

	b.StartTime = start
	b.EndTime = end
	b.Version++
	cp := *b
	return &cp, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func day(hour, min int) time.Time {
	// 2026-01-24 is a Saturday.
	return time.Date(2026, time.January, 24, hour, min, 0, 0, time.UTC)
}

func TestRescheduleBookingExecute(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = &models.Booking{
		ID: 1, SalonID: 1, StaffID: 2, Status: "confirmed", Version: 1,
		StartTime: day(11, 0), EndTime: day(11, 30),
	}
	repo.bookings[2] = &models.Booking{
		ID: 2, SalonID: 1, StaffID: 2, Status: "confirmed", Version: 1,
		StartTime: day(14, 0), EndTime: day(15, 0),
	}

	uc := NewRescheduleBooking(repo, audit.NewDispatcher(nil), nil)

	t.Run("applies a valid move", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), RescheduleBookingInput{
			SalonID: 1, StaffID: 2, BookingID: 1,
			NewStart: day(12, 0), NewEnd: day(12, 30),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !got.StartTime.Equal(day(12, 0)) || !got.EndTime.Equal(day(12, 30)) {
			t.Errorf("committed interval = [%v, %v)", got.StartTime, got.EndTime)
		}
		if got.Version != 2 {
			t.Errorf("Version = %d, want 2 after commit", got.Version)
		}
	})

	t.Run("rejects an overlap and keeps the row", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), RescheduleBookingInput{
			SalonID: 1, StaffID: 2, BookingID: 1,
			NewStart: day(14, 30), NewEnd: day(15, 0),
		})
		if !scheduling.IsConflict(err, scheduling.ConflictOverlap) {
			t.Fatalf("Execute() error = %v, want overlap", err)
		}
		if got == nil || !got.StartTime.Equal(day(12, 0)) {
			t.Errorf("rejected move must return the unchanged booking, got %+v", got)
		}
		if stored := repo.bookings[1]; !stored.StartTime.Equal(day(12, 0)) {
			t.Errorf("stored booking mutated on rejection: %v", stored.StartTime)
		}
	})

	t.Run("rejects outside shift", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), RescheduleBookingInput{
			SalonID: 1, StaffID: 2, BookingID: 1,
			NewStart: day(8, 0), NewEnd: day(8, 30),
		})
		if !scheduling.IsConflict(err, scheduling.ConflictOutsideShift) {
			t.Errorf("Execute() error = %v, want outside_shift", err)
		}
	})

	t.Run("rejects cancelled booking", func(t *testing.T) {
		repo.bookings[3] = &models.Booking{
			ID: 3, SalonID: 1, StaffID: 2, Status: "cancelled", Version: 1,
			StartTime: day(16, 0), EndTime: day(16, 30),
		}
		_, err := uc.Execute(context.Background(), RescheduleBookingInput{
			SalonID: 1, StaffID: 2, BookingID: 3,
			NewStart: day(17, 0), NewEnd: day(17, 30),
		})
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("Execute() error = %v, want invalid_state", err)
		}
	})
}

func TestRescheduleBookingRetriesStaleSnapshot(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = &models.Booking{
		ID: 1, SalonID: 1, StaffID: 2, Status: "confirmed", Version: 1,
		StartTime: day(11, 0), EndTime: day(11, 30),
	}
	repo.staleCommits = 1

	uc := NewRescheduleBooking(repo, audit.NewDispatcher(nil), nil)

	got, err := uc.Execute(context.Background(), RescheduleBookingInput{
		SalonID: 1, StaffID: 2, BookingID: 1,
		NewStart: day(13, 0), NewEnd: day(13, 30),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v, want retry to succeed", err)
	}
	if repo.commits != 2 {
		t.Errorf("commits = %d, want 2 (one stale, one applied)", repo.commits)
	}
	if !got.StartTime.Equal(day(13, 0)) {
		t.Errorf("committed start = %v, want 13:00", got.StartTime)
	}
}

func TestRescheduleBookingGivesUpAfterRetries(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = &models.Booking{
		ID: 1, SalonID: 1, StaffID: 2, Status: "pending", Version: 1,
		StartTime: day(11, 0), EndTime: day(11, 30),
	}
	repo.staleCommits = 10

	uc := NewRescheduleBooking(repo, audit.NewDispatcher(nil), nil)

	_, err := uc.Execute(context.Background(), RescheduleBookingInput{
		SalonID: 1, StaffID: 2, BookingID: 1,
		NewStart: day(13, 0), NewEnd: day(13, 30),
	})
	if !httperr.IsBusiness(err, "stale_snapshot") {
		t.Errorf("Execute() error = %v, want stale_snapshot after exhausting retries", err)
	}
}
