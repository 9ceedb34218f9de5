package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/scheduling"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/httperr"
)

// writeSchedulingError translates core error values into HTTP responses.
// Conflict rejections get 409 so the calendar UI can distinguish "pick
// another slot" from malformed input.
func writeSchedulingError(c *gin.Context, err error) bool {
	if ce, ok := scheduling.AsConflict(err); ok {
		msg := "The requested interval is not available."
		if ce.Code == scheduling.ConflictOverlap {
			msg = fmt.Sprintf("Overlaps booking %d.", ce.ConflictingID)
		}
		httperr.Conflict(c, ce.Code, msg)
		return true
	}

	if scheduling.IsResolution(err, scheduling.ResolutionUnknownDate) {
		httperr.BadRequest(c, scheduling.ResolutionUnknownDate, "Date label matches no upcoming date.")
		return true
	}
	if scheduling.IsResolution(err, scheduling.ResolutionInvalidTime) {
		httperr.BadRequest(c, scheduling.ResolutionInvalidTime, "Time must be HH:MM.")
		return true
	}

	if scheduling.IsValidation(err) {
		httperr.BadRequest(c, err.Error(), "Invalid shift definition.")
		return true
	}

	for _, code := range []string{
		"service_not_found",
		"booking_not_found",
		"invalid_date_or_time",
		"too_soon",
		"invalid_state",
	} {
		if httperr.IsBusiness(err, code) {
			httperr.BadRequest(c, code, "Request rejected.")
			return true
		}
	}

	if httperr.IsBusiness(err, "stale_snapshot") {
		httperr.Conflict(c, "stale_snapshot", "Booking changed concurrently, refresh and retry.")
		return true
	}

	return false
}
