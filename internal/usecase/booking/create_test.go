package booking

import (
	"context"
	"testing"
	"time"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/audit"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/scheduling"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/httperr"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

func TestCreateBookingModernShape(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, audit.NewDispatcher(nil), nil)

	got, err := uc.Execute(context.Background(), CreateBookingInput{
		SalonID:       1,
		StaffID:       2,
		CustomerName:  "مینا",
		CustomerPhone: "0912",
		ServiceID:     1,
		Date:          "2026-01-24",
		Time:          "11:00",
		InitialStatus: scheduling.StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !got.StartTime.Equal(day(11, 0)) {
		t.Errorf("StartTime = %v, want 11:00", got.StartTime)
	}
	// End derives from the configured 30-minute service.
	if !got.EndTime.Equal(day(11, 30)) {
		t.Errorf("EndTime = %v, want 11:30", got.EndTime)
	}
	if got.Reference == "" {
		t.Error("Reference not assigned")
	}
	if got.Version != 1 {
		t.Errorf("Version = %d, want 1", got.Version)
	}
}

func TestCreateBookingLegacyShape(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, audit.NewDispatcher(nil), nil)

	// The legacy label list starts from today, so build tomorrow's label
	// the same way the intake UI did.
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	label := scheduling.DateLabelFor(tomorrow)

	got, err := uc.Execute(context.Background(), CreateBookingInput{
		SalonID:       1,
		StaffID:       2,
		CustomerName:  "مینا",
		CustomerPhone: "0912",
		ServiceID:     1,
		DateLabel:     label,
		TimeLabel:     "11:00",
		InitialStatus: scheduling.StatusPending,
	})
	if err != nil {
		t.Fatalf("Execute(legacy) error = %v", err)
	}

	if got.StartTime.Day() != tomorrow.Day() || got.StartTime.Hour() != 11 {
		t.Errorf("StartTime = %v, want tomorrow 11:00", got.StartTime)
	}
	// Provenance labels survive normalization for display.
	if got.DateLabel != label || got.TimeLabel != "11:00" {
		t.Errorf("legacy provenance lost: %q %q", got.DateLabel, got.TimeLabel)
	}
	if got.Status != string(scheduling.StatusPending) {
		t.Errorf("Status = %s, want pending", got.Status)
	}
}

func TestCreateBookingRejectsConflicts(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[9] = &models.Booking{
		ID: 9, SalonID: 1, StaffID: 2, Status: "confirmed", Version: 1,
		StartTime: day(11, 0), EndTime: day(11, 30),
	}
	uc := NewCreateBooking(repo, audit.NewDispatcher(nil), nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		SalonID: 1, StaffID: 2, CustomerName: "x", CustomerPhone: "1",
		ServiceID: 1, Date: "2026-01-24", Time: "11:15",
	})
	if !scheduling.IsConflict(err, scheduling.ConflictOverlap) {
		t.Errorf("Execute() error = %v, want overlap", err)
	}

	// Back-to-back is legal.
	if _, err := uc.Execute(context.Background(), CreateBookingInput{
		SalonID: 1, StaffID: 2, CustomerName: "x", CustomerPhone: "1",
		ServiceID: 1, Date: "2026-01-24", Time: "11:30",
	}); err != nil {
		t.Errorf("Execute(back-to-back) error = %v, want nil", err)
	}
}

func TestCreateBookingMinAdvance(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, audit.NewDispatcher(nil), nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		SalonID: 1, StaffID: 2, CustomerName: "x", CustomerPhone: "1",
		ServiceID: 1, Date: "2020-01-04", Time: "11:00",
		EnforceMinAdvance: true,
	})
	if !httperr.IsBusiness(err, "too_soon") {
		t.Errorf("Execute(past date) error = %v, want too_soon", err)
	}
}
