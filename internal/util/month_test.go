package util

import (
	"testing"
	"time"
)

func TestMonthLabel(t *testing.T) {
	got := MonthLabel(time.Date(2024, 2, 15, 13, 45, 0, 0, time.UTC))
	if got != "2024-02" {
		t.Errorf("Expected 2024-02, got %s", got)
	}
}

func TestTrailingMonthLabels(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	got := TrailingMonthLabels(now, 3)

	want := []string{"2024-01", "2024-02", "2024-03"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d labels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Label %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestTrailingMonthLabels_CrossesYearBoundary(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	got := TrailingMonthLabels(now, 3)

	want := []string{"2023-11", "2023-12", "2024-01"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Label %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestTrailingMonthLabels_EndOfLongMonth(t *testing.T) {
	// Day 31 must not skip short months when stepping back.
	now := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	got := TrailingMonthLabels(now, 3)

	want := []string{"2024-03", "2024-04", "2024-05"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Label %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
