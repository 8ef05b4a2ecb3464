package analysis

import (
	"math"
	"time"
)

// ReadinessResult is a 0-100 race-readiness estimate with its four
// equally weighted sub-scores.
type ReadinessResult struct {
	Consistency   int // training frequency over the trailing 28 days
	LiftBalance   int // strength ACWR in the productive band
	CardioBalance int // cardio ACWR in the productive band
	Taper         int // recent cardio volume vs the prior block
	Overall       int
}

// Readiness scores how ready the athlete is to race, as the mean of
// four sub-scores. A perfect score wants ~5-6 sessions a week, both
// load ratios near 1.05, and cardio volume tapering to 60-85% of the
// prior four weeks.
func Readiness(sessions []Session, asOf time.Time) ReadinessResult {
	r := ReadinessResult{
		Consistency:   consistencyScore(sessions, asOf),
		LiftBalance:   acwrScore(StrengthACWR(sessions, asOf).Ratio),
		CardioBalance: acwrScore(CardioACWR(sessions, asOf).Ratio),
		Taper:         taperScore(sessions, asOf),
	}
	sum := r.Consistency + r.LiftBalance + r.CardioBalance + r.Taper
	r.Overall = int(math.Round(float64(sum) / 4))
	return r
}

// consistencyScore rewards active days in the trailing 28: 100 points
// at 22-23 active days (the 125% multiplier saturates there).
func consistencyScore(sessions []Session, asOf time.Time) int {
	cutoff := Day(asOf).AddDate(0, 0, -chronicWindowDays)
	active := make(map[time.Time]bool)
	for _, s := range sessions {
		d := Day(s.Date)
		if !d.Before(cutoff) {
			active[d] = true
		}
	}
	score := int(math.Round(float64(len(active)) / chronicWindowDays * 125))
	if score > 100 {
		score = 100
	}
	return score
}

// acwrScore maps a load ratio into a readiness sub-score. The band
// [0.8, 1.3] is productive and peaks at 1.05; the shoulders just
// outside it score 55; anything further out (or no history) is a flag.
func acwrScore(ratio *float64) int {
	if ratio == nil {
		return 40
	}
	r := *ratio
	switch {
	case r >= 0.8 && r <= 1.3:
		score := int(math.Round(80 + (1-math.Abs(r-1.05)/0.25)*20))
		if score > 100 {
			score = 100
		}
		return score
	case (r >= 0.6 && r < 0.8) || (r > 1.3 && r <= 1.5):
		return 55
	default:
		return 30
	}
}

// taperScore compares cardio minutes in the trailing 28 days against
// the 28 days before that. A ratio of 0.6-0.85 is a classic taper.
func taperScore(sessions []Session, asOf time.Time) int {
	daily := DailyTotals(ofKind(sessions, Cardio), DurationLoad)

	cutoff := Day(asOf).AddDate(0, 0, -chronicWindowDays)
	priorCutoff := Day(asOf).AddDate(0, 0, -2*chronicWindowDays)
	var recent, prior float64
	for _, p := range daily {
		switch {
		case !p.Date.Before(cutoff):
			recent += p.Value
		case !p.Date.Before(priorCutoff):
			prior += p.Value
		}
	}
	if prior <= 0 {
		return 50
	}

	ratio := recent / prior
	switch {
	case ratio >= 0.6 && ratio <= 0.85:
		return 80
	case ratio < 1.0:
		return 70
	default:
		return 50
	}
}
