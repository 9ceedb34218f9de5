package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/scheduling"
	infraRepo "github.com/Raybod-Code/ayneh-beauty-sub002/internal/infra/repository"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/middleware"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

type ShiftHandler struct {
	db *gorm.DB
}

func NewShiftHandler(db *gorm.DB) *ShiftHandler {
	return &ShiftHandler{db: db}
}

type ShiftDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ShiftUpdateRequest struct {
	Days []ShiftDayConfig `json:"days" binding:"required"`
}

// Get returns all seven weekdays, Saturday first. Days never stored
// come back with the default 10:00-20:00 window marked active.
func (h *ShiftHandler) Get(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var stored []models.Shift
	if err := h.db.
		Where("staff_id = ?", staffID).
		Order("weekday ASC").
		Find(&stored).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_shifts"})
		return
	}

	registry := scheduling.NewShiftRegistry(stored)
	week := registry.ShiftsFor(staffID)

	c.JSON(http.StatusOK, gin.H{"days": week[:]})
}

func (h *ShiftHandler) Update(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req ShiftUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var toCreate []models.Shift
	for _, d := range req.Days {
		if err := scheduling.ValidateShift(d.Weekday, d.StartTime, d.EndTime, d.Active); err != nil {
			if writeSchedulingError(c, err) {
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_shift"})
			return
		}
		toCreate = append(toCreate, models.Shift{
			StaffID:   staffID,
			Weekday:   d.Weekday,
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	repo := infraRepo.NewBookingGormRepository(h.db)
	if err := repo.ReplaceShifts(c.Request.Context(), staffID, toCreate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_shifts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
