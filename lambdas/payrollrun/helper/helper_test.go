package helper

import (
	"testing"
	"time"
)

func TestResolvePeriodDefaultsToPreviousMonth(t *testing.T) {
	now := time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC)

	month, year, err := ResolvePeriod(RunEvent{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if month != 2 || year != 2025 {
		t.Errorf("expected 02/2025, got %02d/%d", month, year)
	}
}

func TestResolvePeriodDefaultAcrossYearBoundary(t *testing.T) {
	now := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

	month, year, err := ResolvePeriod(RunEvent{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if month != 12 || year != 2024 {
		t.Errorf("expected 12/2024, got %02d/%d", month, year)
	}
}

func TestResolvePeriodExplicit(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	month, year, err := ResolvePeriod(RunEvent{Month: 4, Year: 2025}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if month != 4 || year != 2025 {
		t.Errorf("expected 04/2025, got %02d/%d", month, year)
	}
}

func TestResolvePeriodRejectsBadInput(t *testing.T) {
	now := time.Now()

	if _, _, err := ResolvePeriod(RunEvent{Month: 13, Year: 2025}, now); err == nil {
		t.Error("expected error for month 13")
	}
	if _, _, err := ResolvePeriod(RunEvent{Month: 4, Year: 99}, now); err == nil {
		t.Error("expected error for year 99")
	}
}
