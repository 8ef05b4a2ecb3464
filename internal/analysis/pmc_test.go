package analysis

import (
	"math"
	"testing"
)

func TestFitnessTrendEmpty(t *testing.T) {
	if got := FitnessTrend(nil); got != nil {
		t.Errorf("expected nil for empty history, got %+v", got)
	}
}

func TestFitnessTrendSingleDay(t *testing.T) {
	pc := FitnessTrend([]Session{ride(0, 100)})
	if pc == nil {
		t.Fatal("expected curves, got nil")
	}
	if len(pc.Dates) != 1 {
		t.Fatalf("expected 1 point, got %d", len(pc.Dates))
	}
	// With renormalized weights the first point equals the first load.
	ctl, atl, tsb := pc.Latest()
	if math.Abs(ctl-100) > 1e-9 || math.Abs(atl-100) > 1e-9 {
		t.Errorf("day one CTL=%v ATL=%v, want 100 each", ctl, atl)
	}
	if math.Abs(tsb) > 1e-9 {
		t.Errorf("day one TSB = %v, want 0", tsb)
	}
}

func TestFitnessTrendFatigueLeadsFitness(t *testing.T) {
	// A light start followed by three weeks of heavy work: fatigue
	// (span 7) tracks the jump faster than fitness (span 42), so form
	// goes negative and fitness climbs monotonically.
	sessions := []Session{ride(0, 10)}
	for day := 1; day <= 21; day++ {
		sessions = append(sessions, ride(day, 100))
	}

	pc := FitnessTrend(sessions)
	if pc == nil {
		t.Fatal("expected curves, got nil")
	}
	if len(pc.Dates) != 22 {
		t.Fatalf("expected 22 points, got %d", len(pc.Dates))
	}
	for i := 2; i < len(pc.CTL); i++ {
		if pc.CTL[i] <= pc.CTL[i-1] {
			t.Errorf("CTL should climb under constant load: day %d %v -> day %d %v",
				i-1, pc.CTL[i-1], i, pc.CTL[i])
		}
	}
	for i := 1; i < len(pc.TSB); i++ {
		if pc.TSB[i] >= 0 {
			t.Errorf("TSB should be negative during the ramp, day %d = %v", i, pc.TSB[i])
		}
	}
	if pc.ATL[7] <= pc.CTL[7] {
		t.Errorf("ATL should lead CTL during a ramp: ATL=%v CTL=%v", pc.ATL[7], pc.CTL[7])
	}
}

func TestFitnessTrendFillsRestDays(t *testing.T) {
	sessions := []Session{
		ride(0, 100),
		ride(5, 100),
	}

	pc := FitnessTrend(sessions)
	if pc == nil {
		t.Fatal("expected curves, got nil")
	}
	if len(pc.Dates) != 6 {
		t.Fatalf("expected 6 points (gap days filled), got %d", len(pc.Dates))
	}
	for i := range pc.Dates {
		want := baseDate.AddDate(0, 0, i)
		if !pc.Dates[i].Equal(want) {
			t.Errorf("date %d = %v, want %v", i, pc.Dates[i], want)
		}
	}
	// Rest days decay the fatigue curve.
	if pc.ATL[4] >= pc.ATL[0] {
		t.Errorf("ATL should decay across rest days: day 0 %v, day 4 %v", pc.ATL[0], pc.ATL[4])
	}
}

func TestFitnessTrendCombinesKinds(t *testing.T) {
	single := FitnessTrend([]Session{ride(0, 50)})
	mixed := FitnessTrend([]Session{
		{Date: baseDate, Kind: Cardio, ActivityType: "Running", DurationMinutes: 40},
		lift(0, "Squat", 10000), // 10 combined units
	})
	if single == nil || mixed == nil {
		t.Fatal("expected curves for both histories")
	}
	if math.Abs(single.CTL[0]-mixed.CTL[0]) > 1e-9 {
		t.Errorf("40 min + 10k lbs should equal 50 min of load: %v vs %v",
			mixed.CTL[0], single.CTL[0])
	}
}

func TestFormStatus(t *testing.T) {
	tests := []struct {
		tsb  float64
		want string
	}{
		{20, "Fresh"},
		{15.1, "Fresh"},
		{15, "Recovered"},
		{0.1, "Recovered"},
		{0, "Balanced"},
		{-9.9, "Balanced"},
		{-10, "Deep Fatigue"},
		{-30, "Deep Fatigue"},
	}
	for _, tt := range tests {
		if got := FormStatus(tt.tsb); got != tt.want {
			t.Errorf("FormStatus(%v) = %q, want %q", tt.tsb, got, tt.want)
		}
	}
}
