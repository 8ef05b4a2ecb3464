package analysis

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday maps to itself", time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"sunday belongs to the prior monday", time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"next monday starts a new week", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeeklyVolumes(t *testing.T) {
	sessions := []Session{
		lift(0, "Squat (Barbell)", 12000),  // Mon Jan 1
		lift(2, "Bench Press", 8000),       // Wed Jan 3
		run(4, 40, 5),                      // Fri Jan 5
		ride(7, 60),                        // Mon Jan 8, next week
		lift(8, "Deadlift (Barbell)", 9000), // Tue Jan 9
	}

	weeks := WeeklyVolumes(sessions)
	if len(weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weeks))
	}

	first := weeks[0]
	if !first.Week.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first week = %v, want Jan 1", first.Week)
	}
	if first.Tonnage != 20000 {
		t.Errorf("first week tonnage = %v, want 20000", first.Tonnage)
	}
	if first.CardioMinutes["Running"] != 40 {
		t.Errorf("first week running = %v, want 40", first.CardioMinutes["Running"])
	}

	second := weeks[1]
	if second.Tonnage != 9000 {
		t.Errorf("second week tonnage = %v, want 9000", second.Tonnage)
	}
	if second.CardioMinutes["Cycling"] != 60 {
		t.Errorf("second week cycling = %v, want 60", second.CardioMinutes["Cycling"])
	}
}

func TestWeeklyVolumesEmpty(t *testing.T) {
	if got := WeeklyVolumes(nil); len(got) != 0 {
		t.Errorf("expected no weeks, got %d", len(got))
	}
}
