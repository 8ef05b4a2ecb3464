package analysis

import "time"

const (
	ctlSpan = 42
	atlSpan = 7
)

// PerformanceCurves holds the fitness (CTL), fatigue (ATL), and form
// (TSB = CTL - ATL) series over a dense, zero-filled daily range.
// The three slices are parallel to Dates.
type PerformanceCurves struct {
	Dates []time.Time
	CTL   []float64
	ATL   []float64
	TSB   []float64
}

// FitnessTrend computes CTL/ATL/TSB from the combined daily load.
// Days between the first and last session count as zero-load days, so
// a long break decays both curves. Returns nil when there are no
// sessions at all.
func FitnessTrend(sessions []Session) *PerformanceCurves {
	daily := DailyTotals(sessions, CombinedLoad)
	if len(daily) == 0 {
		return nil
	}

	dates, loads := denseFill(daily)
	ctl := ewma(loads, ctlSpan)
	atl := ewma(loads, atlSpan)

	tsb := make([]float64, len(dates))
	for i := range dates {
		tsb[i] = ctl[i] - atl[i]
	}
	return &PerformanceCurves{Dates: dates, CTL: ctl, ATL: atl, TSB: tsb}
}

// Latest returns the final point of each curve.
func (pc *PerformanceCurves) Latest() (ctl, atl, tsb float64) {
	last := len(pc.Dates) - 1
	return pc.CTL[last], pc.ATL[last], pc.TSB[last]
}

// FormStatus classifies a form (TSB) value.
func FormStatus(tsb float64) string {
	switch {
	case tsb > 15:
		return "Fresh"
	case tsb > 0:
		return "Recovered"
	case tsb > -10:
		return "Balanced"
	default:
		return "Deep Fatigue"
	}
}

// denseFill expands a sparse sorted daily series into one entry per
// calendar day from first to last, with zeros on the gaps.
func denseFill(daily []DailyPoint) ([]time.Time, []float64) {
	byDate := make(map[time.Time]float64, len(daily))
	for _, p := range daily {
		byDate[p.Date] = p.Value
	}

	first := daily[0].Date
	last := daily[len(daily)-1].Date
	n := int(last.Sub(first).Hours()/24) + 1

	dates := make([]time.Time, 0, n)
	loads := make([]float64, 0, n)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
		loads = append(loads, byDate[d])
	}
	return dates, loads
}

// ewma is an exponentially weighted mean with the weights of every
// prior observation renormalized at each step (a running
// numerator/denominator pair), so early values are not biased toward
// the zero seed of the plain recursive form.
func ewma(values []float64, span float64) []float64 {
	alpha := 2 / (span + 1)
	decay := 1 - alpha

	out := make([]float64, len(values))
	var num, den float64
	for i, v := range values {
		num = v + decay*num
		den = 1 + decay*den
		out[i] = num / den
	}
	return out
}
