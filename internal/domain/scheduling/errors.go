package scheduling

import (
	"errors"
	"fmt"
)

// All expected failures in this package are plain error values with a
// machine code; handlers translate codes to HTTP. Nothing here panics
// for business conditions.

// ===============================
// Resolution errors
// ===============================

const (
	ResolutionUnknownDate = "unknown_date"
	ResolutionInvalidTime = "invalid_time"
)

type ResolutionError struct {
	Code  string
	Input string
}

func (e *ResolutionError) Error() string {
	if e.Input == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %q", e.Code, e.Input)
}

func IsResolution(err error, code string) bool {
	var re *ResolutionError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// ===============================
// Conflict errors
// ===============================

const (
	ConflictDegenerateInterval = "degenerate_interval"
	ConflictCrossesDayBoundary = "crosses_day_boundary"
	ConflictOutsideShift       = "outside_shift"
	ConflictOverlap            = "overlap"
)

type ConflictError struct {
	Code string

	// ConflictingID is set only for overlap rejections.
	ConflictingID uint
}

func (e *ConflictError) Error() string {
	if e.Code == ConflictOverlap {
		return fmt.Sprintf("%s: booking %d", e.Code, e.ConflictingID)
	}
	return e.Code
}

func errOverlap(bookingID uint) *ConflictError {
	return &ConflictError{Code: ConflictOverlap, ConflictingID: bookingID}
}

func IsConflict(err error, code string) bool {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// AsConflict extracts a ConflictError so callers can surface its code and
// conflicting booking id without re-parsing the message.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// ===============================
// Validation errors
// ===============================

type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
