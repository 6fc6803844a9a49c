package utils

import (
	"fmt"
	"time"
)

// ExpiryStatus classifies an expiration date relative to the start of
// today.
type ExpiryStatus string

const (
	ExpiryOverdue     ExpiryStatus = "overdue"
	ExpiryDueToday    ExpiryStatus = "due_today"
	ExpiryDueTomorrow ExpiryStatus = "due_tomorrow"
	ExpiryUpcoming    ExpiryStatus = "upcoming"
	ExpiryFarFuture   ExpiryStatus = "far_future"
)

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ClassifyExpiry buckets date against now. Upcoming means inside the
// expiring-soon window, far-future beyond it.
func ClassifyExpiry(date, now time.Time) ExpiryStatus {
	today := StartOfDay(now)
	day := StartOfDay(date)

	switch {
	case day.Before(today):
		return ExpiryOverdue
	case day.Equal(today):
		return ExpiryDueToday
	case day.Equal(today.AddDate(0, 0, 1)):
		return ExpiryDueTomorrow
	case IsExpiringSoon(date, now):
		return ExpiryUpcoming
	default:
		return ExpiryFarFuture
	}
}

// IsExpiringSoon reports whether date falls within 3 days from now,
// inclusive.
func IsExpiringSoon(date, now time.Time) bool {
	limit := now.AddDate(0, 0, 3)
	return !date.After(limit)
}

// ExpiryLabel renders a short human label for an expiration date.
func ExpiryLabel(date, now time.Time) string {
	switch ClassifyExpiry(date, now) {
	case ExpiryOverdue:
		return "expired"
	case ExpiryDueToday:
		return "due today"
	case ExpiryDueTomorrow:
		return "due tomorrow"
	default:
		return fmt.Sprintf("expires %d/%d", int(date.Month()), date.Day())
	}
}
