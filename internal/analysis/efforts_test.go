package analysis

import (
	"math"
	"testing"
)

func TestBestRunEfforts(t *testing.T) {
	sessions := []Session{
		run(0, 26.5, 3.1),  // ~5K
		run(7, 24.2, 3.1),  // ~5K, faster
		run(14, 55.0, 6.2), // ~10K
		ride(20, 120),      // cycling never qualifies
		run(21, 0, 3.1),    // zero duration, dropped
	}

	got := BestRunEfforts(sessions)
	effort, ok := got["5K"]
	if !ok {
		t.Fatal("expected a 5K effort")
	}
	if math.Abs(effort.Minutes-24.2) > 1e-9 {
		t.Errorf("5K best = %v, want 24.2", effort.Minutes)
	}
	if _, ok := got["10K"]; !ok {
		t.Error("expected a 10K effort")
	}
	if _, ok := got["Marathon"]; ok {
		t.Error("no marathon-distance run was logged")
	}
}

func TestBestRunEffortsDistanceTolerance(t *testing.T) {
	// 5K bucket accepts 4250-5750 m: 2.6 mi (~4184 m) is out,
	// 2.7 mi (~4345 m) is in.
	outOfRange := BestRunEfforts([]Session{run(0, 20, 2.6)})
	if len(outOfRange) != 0 {
		t.Errorf("2.6 mi run should not qualify, got %v", outOfRange)
	}
	inRange := BestRunEfforts([]Session{run(0, 20, 2.7)})
	if _, ok := inRange["5K"]; !ok {
		t.Error("2.7 mi run should qualify for the 5K bucket")
	}
}

func TestBestRunEffortsEmpty(t *testing.T) {
	if got := BestRunEfforts(nil); len(got) != 0 {
		t.Errorf("expected no efforts, got %v", got)
	}
}
