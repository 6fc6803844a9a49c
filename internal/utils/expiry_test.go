package utils

import (
	"testing"
	"time"
)

var noon = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestClassifyExpiry(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want ExpiryStatus
	}{
		{"yesterday", noon.AddDate(0, 0, -1), ExpiryOverdue},
		{"last week", noon.AddDate(0, 0, -7), ExpiryOverdue},
		{"this morning", time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC), ExpiryDueToday},
		{"tonight", time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC), ExpiryDueToday},
		{"tomorrow", noon.AddDate(0, 0, 1), ExpiryDueTomorrow},
		{"in two days", noon.AddDate(0, 0, 2), ExpiryUpcoming},
		{"in three days", noon.AddDate(0, 0, 3), ExpiryUpcoming},
		{"in four days", noon.AddDate(0, 0, 4), ExpiryFarFuture},
		{"next month", noon.AddDate(0, 1, 0), ExpiryFarFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyExpiry(tt.date, noon); got != tt.want {
				t.Errorf("ClassifyExpiry(%v) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestIsExpiringSoonBoundary(t *testing.T) {
	// the window is three days out, inclusive
	if !IsExpiringSoon(noon.AddDate(0, 0, 3), noon) {
		t.Errorf("exactly three days out should be expiring soon")
	}
	if IsExpiringSoon(noon.AddDate(0, 0, 3).Add(time.Second), noon) {
		t.Errorf("just past three days should not be expiring soon")
	}
	if !IsExpiringSoon(noon.AddDate(0, 0, -10), noon) {
		t.Errorf("already-expired dates are inside the window")
	}
}

func TestExpiryLabel(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{noon.AddDate(0, 0, -1), "expired"},
		{noon, "due today"},
		{noon.AddDate(0, 0, 1), "due tomorrow"},
		{time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), "expires 4/2"},
	}

	for _, tt := range tests {
		if got := ExpiryLabel(tt.date, noon); got != tt.want {
			t.Errorf("ExpiryLabel(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(noon)
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}
