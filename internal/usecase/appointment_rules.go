package usecase

import (
	"time"

	"clinic-appointment-service/internal/domain/entity"
)

// Layouts accepted for start_datetime. RFC3339 carries an explicit offset;
// the naive layouts are interpreted as UTC rather than rejected, which
// keeps the API lenient for callers in a single-timezone deployment.
var (
	offsetLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
)

// validateDuration enforces the appointment duration bounds.
func validateDuration(minutes int) error {
	if minutes < entity.MinDurationMinutes || minutes > entity.MaxDurationMinutes {
		return ErrDurationOutOfRange
	}
	return nil
}

// normalizeStart parses a start datetime into a UTC instant. Input with an
// explicit offset is converted to UTC; naive input is treated as already
// being UTC.
func normalizeStart(raw string) (time.Time, error) {
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidStartDatetime
}

// validateFuture rejects a start instant that is not strictly after now.
// now is sampled once per request so every gate in that request sees the
// same reference instant.
func validateFuture(start, now time.Time) error {
	if !start.After(now) {
		return ErrScheduledInPast
	}
	return nil
}

// findConflict scans the doctor's existing appointments for the first one
// whose half-open interval overlaps [start, end). First match suffices:
// scheduling is rejected on any conflict.
func findConflict(existing []entity.Appointment, start, end time.Time) *entity.Appointment {
	for i := range existing {
		if existing[i].Overlaps(start, end) {
			return &existing[i]
		}
	}
	return nil
}
