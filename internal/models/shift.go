package models

import "time"

// Shift is one recurring availability window for a staff member.
// Weekday runs Saturday-first (0=Saturday … 6=Friday); times are "HH:MM"
// clock strings in the salon timezone.
type Shift struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `json:"staff_id"`

	Weekday int `json:"weekday"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
