package analysis

import "testing"

func TestAcwrScore(t *testing.T) {
	tests := []struct {
		name  string
		ratio *float64
		want  int
	}{
		{"no history", nil, 40},
		{"dead center", floatPtr(1.05), 100},
		{"steady state", floatPtr(1.0), 96},
		{"band floor", floatPtr(0.8), 80},
		{"band ceiling", floatPtr(1.3), 80},
		{"low shoulder", floatPtr(0.7), 55},
		{"high shoulder", floatPtr(1.4), 55},
		{"shoulder floor", floatPtr(0.6), 55},
		{"shoulder ceiling", floatPtr(1.5), 55},
		{"detrained", floatPtr(0.3), 30},
		{"spiking", floatPtr(1.8), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := acwrScore(tt.ratio); got != tt.want {
				t.Errorf("acwrScore(%v) = %d, want %d", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestConsistencyScore(t *testing.T) {
	tests := []struct {
		name       string
		activeDays int
		want       int
	}{
		{"nothing logged", 0, 0},
		{"twice a week", 8, 36},
		{"every other day", 14, 63},
		{"saturates before daily", 23, 100},
		{"every single day", 28, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []Session
			for day := 0; day < tt.activeDays; day++ {
				sessions = append(sessions, ride(day, 30))
			}
			asOf := baseDate.AddDate(0, 0, 27)
			if got := consistencyScore(sessions, asOf); got != tt.want {
				t.Errorf("consistencyScore(%d active days) = %d, want %d", tt.activeDays, got, tt.want)
			}
		})
	}
}

func TestTaperScore(t *testing.T) {
	tests := []struct {
		name   string
		recent float64 // daily cardio minutes, trailing 28 days
		prior  float64 // daily cardio minutes, 28 days before that
		want   int
	}{
		{"classic taper", 42, 60, 80},  // ratio ~0.76
		{"mild reduction", 55, 60, 70}, // ratio ~0.99
		{"still building", 70, 60, 50}, // ratio ~1.25
		{"flat", 60, 60, 50},           // ratio ~1.07
		{"cliff drop", 20, 60, 70},     // ratio ~0.38, reduced but not a structured taper
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []Session
			for day := 0; day < 56; day++ {
				minutes := tt.prior
				if day >= 28 {
					minutes = tt.recent
				}
				sessions = append(sessions, ride(day, minutes))
			}
			asOf := baseDate.AddDate(0, 0, 55)
			if got := taperScore(sessions, asOf); got != tt.want {
				t.Errorf("taperScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTaperScoreNoPriorBlock(t *testing.T) {
	var sessions []Session
	for day := 0; day < 14; day++ {
		sessions = append(sessions, ride(day, 45))
	}
	asOf := baseDate.AddDate(0, 0, 13)
	if got := taperScore(sessions, asOf); got != 50 {
		t.Errorf("taperScore() with no prior block = %d, want 50", got)
	}
}

func TestReadinessOverall(t *testing.T) {
	// Daily lifting at flat tonnage, no cardio: consistency 100,
	// lifting ratio 1.0 -> 96, cardio nil -> 40, taper no-prior -> 50.
	var sessions []Session
	for day := 0; day < 28; day++ {
		sessions = append(sessions, lift(day, "Squat", 5000))
	}
	asOf := baseDate.AddDate(0, 0, 27)

	got := Readiness(sessions, asOf)
	if got.Consistency != 100 {
		t.Errorf("Consistency = %d, want 100", got.Consistency)
	}
	if got.LiftBalance != 96 {
		t.Errorf("LiftBalance = %d, want 96", got.LiftBalance)
	}
	if got.CardioBalance != 40 {
		t.Errorf("CardioBalance = %d, want 40", got.CardioBalance)
	}
	if got.Taper != 50 {
		t.Errorf("Taper = %d, want 50", got.Taper)
	}
	if got.Overall != 72 {
		t.Errorf("Overall = %d, want 72", got.Overall)
	}
}

func TestReadinessEmptyHistory(t *testing.T) {
	got := Readiness(nil, baseDate)
	if got.Consistency != 0 {
		t.Errorf("Consistency = %d, want 0", got.Consistency)
	}
	if got.LiftBalance != 40 || got.CardioBalance != 40 {
		t.Errorf("balance scores = %d/%d, want 40/40", got.LiftBalance, got.CardioBalance)
	}
	if got.Taper != 50 {
		t.Errorf("Taper = %d, want 50", got.Taper)
	}
	// (0 + 40 + 40 + 50) / 4 = 32.5, rounds to 33
	if got.Overall != 33 {
		t.Errorf("Overall = %d, want 33", got.Overall)
	}
}
