package analysis

import (
	"math"
	"time"
)

const (
	monotonyModerate = 1.5
	monotonyHigh     = 2.0
)

// MonotonyResult summarizes day-to-day variability of the combined
// load over the trailing 28 days. High monotony (little variation
// between training days) compounds the strain of a big week.
type MonotonyResult struct {
	Monotony float64
	Mean     float64
	StdDev   float64
	Status   string
}

// Monotony computes mean / sample-stddev of the combined daily loads
// in the trailing 28 days. Only days with at least one session enter
// the series; rest days do not count as zero-load days here.
func Monotony(sessions []Session, asOf time.Time) MonotonyResult {
	daily := Window(DailyTotals(sessions, CombinedLoad), asOf, chronicWindowDays)

	mean := seriesMean(daily)
	std := sampleStdDev(daily, mean)

	var monotony float64
	if std > 0 {
		monotony = round2(mean / std)
	}
	return MonotonyResult{
		Monotony: monotony,
		Mean:     mean,
		StdDev:   std,
		Status:   monotonyStatus(monotony),
	}
}

func monotonyStatus(monotony float64) string {
	switch {
	case monotony < monotonyModerate:
		return "Low Risk"
	case monotony < monotonyHigh:
		return "Moderate"
	default:
		return "High Risk"
	}
}

func sampleStdDev(series []DailyPoint, mean float64) float64 {
	if len(series) < 2 {
		return 0
	}
	var sq float64
	for _, p := range series {
		d := p.Value - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(series)-1))
}
