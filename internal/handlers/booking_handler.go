package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/scheduling"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/httperr"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/httpresp"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/middleware"
	ucBooking "github.com/Raybod-Code/ayneh-beauty-sub002/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create      *ucBooking.CreateBooking
	reschedule  *ucBooking.RescheduleBooking
	confirm     *ucBooking.ConfirmBooking
	cancel      *ucBooking.CancelBooking
	complete    *ucBooking.CompleteBooking
	listByDate  *ucBooking.ListBookingsByDate
	listByMonth *ucBooking.ListBookingsByMonth
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	reschedule *ucBooking.RescheduleBooking,
	confirm *ucBooking.ConfirmBooking,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
	listByDate *ucBooking.ListBookingsByDate,
	listByMonth *ucBooking.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		create:      create,
		reschedule:  reschedule,
		confirm:     confirm,
		cancel:      cancel,
		complete:    complete,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	ServiceID     uint   `json:"service_id" binding:"required"`

	// Modern shape.
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM

	// Already-canonical shape (manual edits keep their interval).
	StartAt string `json:"start_at"` // RFC 3339
	EndAt   string `json:"end_at"`   // RFC 3339

	// Legacy label shape.
	DateLabel string `json:"date_label"`
	TimeLabel string `json:"time_label"`

	Notes string `json:"notes"`
}

type RescheduleBookingRequest struct {
	StartAt string `json:"start_at" binding:"required"` // RFC 3339
	EndAt   string `json:"end_at" binding:"required"`   // RFC 3339
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		SalonID:       salonID,
		StaffID:       staffID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		StartAt:       req.StartAt,
		EndAt:         req.EndAt,
		DateLabel:     req.DateLabel,
		TimeLabel:     req.TimeLabel,
		Notes:         req.Notes,
		InitialStatus: scheduling.StatusConfirmed,
	})
	if err != nil {
		if writeSchedulingError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// RESCHEDULE (drag-drop)
// ======================================================

func (h *BookingHandler) Reschedule(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	newStart, err := parseTimestampInSalon(nil, req.StartAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "start_at must be RFC 3339.")
		return
	}
	newEnd, err := parseTimestampInSalon(nil, req.EndAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_end", "end_at must be RFC 3339.")
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), ucBooking.RescheduleBookingInput{
		SalonID:   salonID,
		StaffID:   staffID,
		BookingID: uint(bookingID),
		NewStart:  newStart,
		NewEnd:    newEnd,
	})
	if err != nil {
		if writeSchedulingError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_reschedule", "Could not reschedule booking.")
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDateInSalon(nil, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), staffID, salonID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, out)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), staffID, salonID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    month,
		"bookings": out,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.stateChange(c, func(salonID, staffID, bookingID uint) (any, error) {
		return h.confirm.Execute(c.Request.Context(), salonID, staffID, bookingID)
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.stateChange(c, func(salonID, staffID, bookingID uint) (any, error) {
		return h.cancel.Execute(c.Request.Context(), salonID, staffID, bookingID)
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.stateChange(c, func(salonID, staffID, bookingID uint) (any, error) {
		return h.complete.Execute(c.Request.Context(), salonID, staffID, bookingID)
	})
}

func (h *BookingHandler) stateChange(
	c *gin.Context,
	run func(salonID, staffID, bookingID uint) (any, error),
) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := run(salonID, staffID, uint(bookingID))
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Booking state does not allow this change.")
			return
		}
		httperr.Internal(c, "failed_to_update_booking", "Could not update booking.")
		return
	}

	c.JSON(http.StatusOK, b)
}
