package scheduling

import (
	"strings"
	"time"
)

// DefaultHorizonDays bounds how far ahead legacy date labels are matched.
// Labels outside the window resolve to an explicit unknown-date error;
// there is no silent fallback for exhausted lists.
const DefaultHorizonDays = 14

// BookingRecord is the dual-shape input the resolver accepts. Modern
// records carry RFC 3339 timestamps in StartAt/EndAt; legacy records
// carry a "<weekday> <day-of-month>" date label plus an "HH:MM" time
// label. After resolution only the canonical interval is authoritative.
type BookingRecord struct {
	StartAt string
	EndAt   string

	DateLabel string
	TimeLabel string

	ServiceName string
}

// IsCanonical reports whether the record already carries both timestamps.
func (r BookingRecord) IsCanonical() bool {
	return r.StartAt != "" && r.EndAt != ""
}

// Interval is a canonical half-open [Start, End) booking window in the
// salon's fixed timezone.
type Interval struct {
	Start time.Time
	End   time.Time
}

// LabeledDate pairs an upcoming calendar date with its legacy label.
type LabeledDate struct {
	Label string
	Date  time.Time
}

// IntervalResolver normalizes booking records into canonical intervals.
// All output is anchored to one fixed location and a fixed "today" so
// resolution is deterministic for a given snapshot in time.
type IntervalResolver struct {
	loc     *time.Location
	today   time.Time
	horizon int
}

func NewIntervalResolver(loc *time.Location, now time.Time, horizonDays int) *IntervalResolver {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	return &IntervalResolver{
		loc:     loc,
		today:   today,
		horizon: horizonDays,
	}
}

// UpcomingDates lists the dates legacy labels are matched against, in
// order, starting from today.
func (r *IntervalResolver) UpcomingDates() []LabeledDate {
	out := make([]LabeledDate, 0, r.horizon)
	for offset := 0; offset < r.horizon; offset++ {
		d := r.today.AddDate(0, 0, offset)
		out = append(out, LabeledDate{Label: DateLabelFor(d), Date: d})
	}
	return out
}

// Resolve produces the canonical interval for a booking record.
//
// Canonical records are parsed and returned as-is: an operator may have
// manually stretched or shrunk the interval, so the service duration is
// never recomputed on this path. Legacy records are matched against the
// upcoming-dates list and get their end derived from the catalog.
func (r *IntervalResolver) Resolve(rec BookingRecord, catalog *ServiceCatalog) (Interval, error) {
	if rec.IsCanonical() {
		start, errStart := time.Parse(time.RFC3339, rec.StartAt)
		end, errEnd := time.Parse(time.RFC3339, rec.EndAt)
		if errStart == nil && errEnd == nil {
			return Interval{Start: start.In(r.loc), End: end.In(r.loc)}, nil
		}
		// Malformed timestamps fall through to the legacy labels, if any.
	}

	day, err := r.matchDateLabel(rec.DateLabel)
	if err != nil {
		return Interval{}, err
	}

	minutes, err := parseClock(rec.TimeLabel)
	if err != nil {
		return Interval{}, &ResolutionError{Code: ResolutionInvalidTime, Input: rec.TimeLabel}
	}

	start := day.Add(time.Duration(minutes) * time.Minute)
	duration := catalog.DurationFor(rec.ServiceName)
	end := start.Add(time.Duration(duration) * time.Minute)

	return Interval{Start: start, End: end}, nil
}

func (r *IntervalResolver) matchDateLabel(label string) (time.Time, error) {
	needle := strings.Join(strings.Fields(label), " ")
	if needle == "" {
		return time.Time{}, &ResolutionError{Code: ResolutionUnknownDate, Input: label}
	}

	for offset := 0; offset < r.horizon; offset++ {
		d := r.today.AddDate(0, 0, offset)
		if DateLabelFor(d) == needle {
			return d, nil
		}
	}

	return time.Time{}, &ResolutionError{Code: ResolutionUnknownDate, Input: label}
}
