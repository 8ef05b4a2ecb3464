package analysis

import "time"

const (
	acuteWindowDays   = 7
	chronicWindowDays = 28
)

// LoadRatio is the acute:chronic workload summary for one load metric.
// Ratio is nil when there is no chronic history to divide by.
type LoadRatio struct {
	Ratio   *float64
	Acute   float64 // mean daily load, trailing 7 days
	Chronic float64 // mean daily load, trailing 28 days
}

// StrengthACWR computes the acute:chronic ratio of daily tonnage.
func StrengthACWR(sessions []Session, asOf time.Time) LoadRatio {
	return workloadRatio(DailyTotals(ofKind(sessions, Strength), TonnageLoad), asOf)
}

// CardioACWR computes the acute:chronic ratio of daily cardio minutes.
func CardioACWR(sessions []Session, asOf time.Time) LoadRatio {
	return workloadRatio(DailyTotals(ofKind(sessions, Cardio), DurationLoad), asOf)
}

// CombinedACWR computes the acute:chronic ratio of the combined load
// (tonnage/1000 + cardio minutes) across all sessions.
func CombinedACWR(sessions []Session, asOf time.Time) LoadRatio {
	return workloadRatio(DailyTotals(sessions, CombinedLoad), asOf)
}

func workloadRatio(daily []DailyPoint, asOf time.Time) LoadRatio {
	acute := seriesMean(Window(daily, asOf, acuteWindowDays))
	chronic := seriesMean(Window(daily, asOf, chronicWindowDays))
	if chronic == 0 {
		return LoadRatio{Acute: acute}
	}
	ratio := round2(acute / chronic)
	return LoadRatio{Ratio: &ratio, Acute: acute, Chronic: chronic}
}
