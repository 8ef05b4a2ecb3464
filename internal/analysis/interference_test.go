package analysis

import "testing"

func TestIsLegExercise(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Barbell Back Squat", true},
		{"SQUAT", true},
		{"Leg Press (Machine)", true},
		{"Walking Lunge", true},
		{"Seated Leg Curl", true},
		{"Leg Extension", true},
		{"Standing Calf Raise", true},
		{"Bench Press", false},
		{"Deadlift", false},
		{"Lat Pulldown", false},
	}
	for _, tt := range tests {
		if got := IsLegExercise(tt.name); got != tt.want {
			t.Errorf("IsLegExercise(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestInterferenceRunAfterLegDay(t *testing.T) {
	// Monday legs, Tuesday run: one eccentric-load collision out of one
	// leg day is the worst case.
	sessions := []Session{
		lift(0, "Back Squat", 8000),
		run(1, 30, 3),
	}

	got := Interference(sessions)
	if got.LEL24 != 1 {
		t.Errorf("LEL24 = %d, want 1", got.LEL24)
	}
	if got.LSL48 != 0 {
		t.Errorf("LSL48 = %d, want 0", got.LSL48)
	}
	if got.Score != 100 {
		t.Errorf("score = %d, want 100", got.Score)
	}
	if got.Status != "High Risk" {
		t.Errorf("status = %q, want High Risk", got.Status)
	}
}

func TestInterferenceRunBeforeLegDay(t *testing.T) {
	sessions := []Session{
		run(0, 30, 3),
		lift(2, "Leg Press", 8000),
	}

	got := Interference(sessions)
	if got.LSL48 != 1 {
		t.Errorf("LSL48 = %d, want 1", got.LSL48)
	}
	if got.LEL24 != 0 {
		t.Errorf("LEL24 = %d, want 0", got.LEL24)
	}
}

func TestInterferenceSameDayDoesNotCount(t *testing.T) {
	sessions := []Session{
		lift(0, "Back Squat", 8000),
		run(0, 30, 3),
	}

	got := Interference(sessions)
	if got.Events != 0 {
		t.Errorf("same-day events = %d, want 0", got.Events)
	}
	if got.Status != "Low Risk" {
		t.Errorf("status = %q, want Low Risk", got.Status)
	}
}

func TestInterferenceWellSeparated(t *testing.T) {
	// Legs and runs four days apart never collide.
	sessions := []Session{
		lift(0, "Back Squat", 8000),
		run(4, 30, 3),
		lift(8, "Back Squat", 8000),
		run(12, 30, 3),
	}

	got := Interference(sessions)
	if got.Score != 0 {
		t.Errorf("score = %d, want 0", got.Score)
	}
	if got.Status != "Low Risk" {
		t.Errorf("status = %q, want Low Risk", got.Status)
	}
}

func TestInterferenceNoData(t *testing.T) {
	tests := []struct {
		name     string
		sessions []Session
	}{
		{"no sessions", nil},
		{"runs but no leg days", []Session{run(0, 30, 3), lift(1, "Bench Press", 5000)}},
		{"leg days but no runs", []Session{lift(0, "Back Squat", 8000), ride(1, 45)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interference(tt.sessions)
			if got.Status != "No Data" {
				t.Errorf("status = %q, want No Data", got.Status)
			}
			if got.Score != 0 {
				t.Errorf("score = %d, want 0", got.Score)
			}
		})
	}
}

func TestInterferenceScoreCapped(t *testing.T) {
	// One leg day surrounded by collisions on both sides exceeds the
	// per-leg-day budget; the score must stay at 100.
	sessions := []Session{
		run(0, 30, 3), // 2 days before
		run(1, 30, 3), // 1 day before
		lift(2, "Back Squat", 8000),
		run(3, 30, 3), // 1 day after
	}

	got := Interference(sessions)
	if got.Events != 3 {
		t.Errorf("events = %d, want 3", got.Events)
	}
	if got.Score != 100 {
		t.Errorf("score = %d, want 100 (capped)", got.Score)
	}
}
