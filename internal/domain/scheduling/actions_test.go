package scheduling

import (
	"testing"
	"time"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

func TestBookingLifecycle(t *testing.T) {
	now := time.Date(2026, time.January, 24, 18, 0, 0, 0, testLoc)

	b := models.Booking{Status: string(StatusPending)}

	if err := Complete(&b, now); err == nil {
		t.Error("Complete(pending) should fail")
	}

	if err := Confirm(&b); err != nil {
		t.Fatalf("Confirm(pending) = %v", err)
	}
	if b.Status != string(StatusConfirmed) {
		t.Fatalf("status = %s, want confirmed", b.Status)
	}

	if err := Confirm(&b); err == nil {
		t.Error("Confirm(confirmed) should fail")
	}

	if err := Complete(&b, now); err != nil {
		t.Fatalf("Complete(confirmed) = %v", err)
	}
	if b.CompletedAt == nil || !b.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", b.CompletedAt, now)
	}

	if err := Cancel(&b, now); err == nil {
		t.Error("Cancel(completed) should fail")
	}
}

func TestCancelKeepsHistory(t *testing.T) {
	now := time.Date(2026, time.January, 24, 18, 0, 0, 0, testLoc)

	b := models.Booking{
		Status:    string(StatusConfirmed),
		StartTime: saturdayAt(t, 11, 0),
		EndTime:   saturdayAt(t, 11, 30),
	}

	if err := Cancel(&b, now); err != nil {
		t.Fatalf("Cancel(confirmed) = %v", err)
	}
	if b.Status != string(StatusCancelled) || b.CancelledAt == nil {
		t.Errorf("cancel result = %+v", b)
	}
	// Interval survives cancellation; the row is history, not deleted.
	if !b.StartTime.Equal(saturdayAt(t, 11, 0)) {
		t.Errorf("cancelled booking lost its interval: %v", b.StartTime)
	}
}

func TestCanReschedule(t *testing.T) {
	if err := CanReschedule(StatusPending); err != nil {
		t.Errorf("CanReschedule(pending) = %v", err)
	}
	if err := CanReschedule(StatusConfirmed); err != nil {
		t.Errorf("CanReschedule(confirmed) = %v", err)
	}
	if err := CanReschedule(StatusCancelled); err == nil {
		t.Error("CanReschedule(cancelled) should fail")
	}
	if err := CanReschedule(StatusCompleted); err == nil {
		t.Error("CanReschedule(completed) should fail")
	}
}
