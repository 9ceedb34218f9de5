package handlers

import (
	"time"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/timezone"
)

// --------------------------------------------------
// Salon-scoped time parsing
// --------------------------------------------------

// All timestamps entering the scheduling core go through the salon's
// fixed timezone, never the caller's local zone.

func locationFromSalon(salon *models.Salon) *time.Location {
	if salon != nil {
		return timezone.Location(salon.Timezone)
	}
	return timezone.Location("")
}

func parseDateInSalon(salon *models.Salon, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSalon(salon),
	)
}

func parseTimestampInSalon(salon *models.Salon, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(locationFromSalon(salon)), nil
}
