package booking

import (
	"context"
	"time"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
		salonID uint,
	) ([]models.Service, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Shifts --------
	ListShifts(
		ctx context.Context,
		staffID uint,
	) ([]models.Shift, error)

	ReplaceShifts(
		ctx context.Context,
		staffID uint,
		shifts []models.Shift,
	) error

	// -------- Booking (create / snapshot) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingForStaff(
		ctx context.Context,
		bookingID uint,
		staffID uint,
	) (*models.Booking, error)

	// ListBookingsForDay returns the staff member's bookings whose
	// interval can overlap [start, end), ordered by start time. This is
	// the snapshot the conflict detector runs over.
	ListBookingsForDay(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// CommitReschedule persists a validated move with an optimistic
	// version check. Returns ErrStaleSnapshot when another writer won the
	// race; the caller re-fetches and re-validates.
	CommitReschedule(
		ctx context.Context,
		bookingID uint,
		version int,
		start time.Time,
		end time.Time,
	) (*models.Booking, error)
}
