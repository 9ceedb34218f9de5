package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/audit"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/cache"
	domain "github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/booking"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/scheduling"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/httperr"
	infraRepo "github.com/Raybod-Code/ayneh-beauty-sub002/internal/infra/repository"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/timezone"
	ucBooking "github.com/Raybod-Code/ayneh-beauty-sub002/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	slots *cache.Availability
}

func NewPublicHandler(db *gorm.DB, dispatcher *audit.Dispatcher, slots *cache.Availability) *PublicHandler {
	return &PublicHandler{
		db:    db,
		audit: dispatcher,
		slots: slots,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

// Public intake keeps accepting the label shape older embedded widgets
// still send (date_label + time_label) alongside the modern date + time
// pair. Exactly one pair is required.
type PublicCreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	ServiceID     uint   `json:"service_id" binding:"required"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:mm

	DateLabel string `json:"date_label"`
	TimeLabel string `json:"time_label"`

	Notes string `json:"notes"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("salon_id = ? AND active = true", salon.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) AvailabilityForCustomer(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date and service are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service.")
		return
	}

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	var staff models.User
	if err := h.db.
		Where("salon_id = ? AND role = ?", salon.ID, "owner").
		First(&staff).Error; err != nil {

		httperr.BadRequest(c, "staff_not_found", "Staff member not found.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	repo := infraRepo.NewBookingGormRepository(h.db)
	uc := ucBooking.NewGetAvailability(repo, h.slots)

	slots, err := uc.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			SalonID:   salon.ID,
			StaffID:   staff.ID,
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.BadRequest(c, "service_not_found", "Invalid service.")
			return
		}

		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING (PUBLIC INTAKE)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if (req.Date == "" || req.Time == "") && (req.DateLabel == "" || req.TimeLabel == "") {
		httperr.BadRequest(c, "missing_date_or_time", "Send date+time or date_label+time_label.")
		return
	}

	var staff models.User
	if err := h.db.
		Where("salon_id = ? AND role = ?", salon.ID, "owner").
		First(&staff).Error; err != nil {

		httperr.BadRequest(c, "staff_not_found", "Staff member not found.")
		return
	}

	repo := infraRepo.NewBookingGormRepository(h.db)
	uc := ucBooking.NewCreateBooking(repo, h.audit, h.slots)

	b, err := uc.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			SalonID:       salon.ID,
			StaffID:       staff.ID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			ServiceID:     req.ServiceID,
			Date:          req.Date,
			Time:          req.Time,
			DateLabel:     req.DateLabel,
			TimeLabel:     req.TimeLabel,
			Notes:         req.Notes,

			// Public requests wait for the salon to confirm and must
			// respect the configured minimum advance.
			InitialStatus:     scheduling.StatusPending,
			EnforceMinAdvance: true,
		},
	)

	if err != nil {
		if writeSchedulingError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference": b.Reference,
		"status":    b.Status,
		"start_at":  b.StartTime,
		"end_at":    b.EndTime,
	})
}
