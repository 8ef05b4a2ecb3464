package service

import (
	"time"

	"saker/internal/analysis"
)

// DashboardData contains all data needed for the dashboard
type DashboardData struct {
	// Load ratios and their phase classifications
	LiftACWR     analysis.LoadRatio
	CardioACWR   analysis.LoadRatio
	CombinedACWR analysis.LoadRatio
	LiftPhase    analysis.Phase
	CardioPhase  analysis.Phase
	OverallPhase analysis.Phase

	// Risk and readiness
	Monotony     analysis.MonotonyResult
	Interference analysis.InterferenceResult
	Readiness    analysis.ReadinessResult

	// Fitness curves; nil when there is no history at all
	Fitness    *analysis.PerformanceCurves
	CTL        float64
	ATL        float64
	TSB        float64
	FormStatus string

	// This week (Monday start)
	WeekTonnage       float64
	WeekCardioMinutes float64
	WeekActiveDays    int

	// Distribution panels, whole history
	MuscleTonnage map[string]float64
	MuscleSets    map[string]int
	ZoneMinutes   map[string]float64
	BestEfforts   map[string]analysis.BestEffort

	// Weekly volume chart, dense trailing buckets
	WeeklyTonnage []float64
	WeeklyCardio  []float64
	WeeklyLabels  []string

	UsingDemo bool
}

// GetDashboardData assembles everything the dashboard shows, as of the
// given reference time.
func (q *QueryService) GetDashboardData(asOf time.Time) (*DashboardData, error) {
	sessions, usingDemo, err := q.loadSessions()
	if err != nil {
		return nil, err
	}

	data := &DashboardData{UsingDemo: usingDemo}

	data.LiftACWR = analysis.StrengthACWR(sessions, asOf)
	data.CardioACWR = analysis.CardioACWR(sessions, asOf)
	data.CombinedACWR = analysis.CombinedACWR(sessions, asOf)
	data.LiftPhase = analysis.ClassifyPhase(data.LiftACWR.Ratio)
	data.CardioPhase = analysis.ClassifyPhase(data.CardioACWR.Ratio)
	data.OverallPhase = analysis.ClassifyPhase(data.CombinedACWR.Ratio)

	data.Monotony = analysis.Monotony(sessions, asOf)
	data.Interference = analysis.Interference(sessions)
	data.Readiness = analysis.Readiness(sessions, asOf)

	if fitness := analysis.FitnessTrend(sessions); fitness != nil {
		data.Fitness = fitness
		data.CTL, data.ATL, data.TSB = fitness.Latest()
		data.FormStatus = analysis.FormStatus(data.TSB)
	}

	data.WeekTonnage, data.WeekCardioMinutes, data.WeekActiveDays = weekStats(sessions, asOf)

	data.MuscleTonnage = analysis.MuscleBalance(sessions)
	data.MuscleSets = muscleSetCounts(sessions)
	data.ZoneMinutes = analysis.ZoneMinutes(sessions)
	data.BestEfforts = analysis.BestRunEfforts(sessions)

	data.WeeklyTonnage, data.WeeklyCardio, data.WeeklyLabels = weeklyChart(sessions, asOf, ChartWeeks)

	return data, nil
}

// weekStats sums training in the current Monday-anchored week.
func weekStats(sessions []analysis.Session, asOf time.Time) (tonnage, cardioMin float64, activeDays int) {
	weekStart := analysis.WeekStart(asOf)
	days := make(map[time.Time]bool)
	for _, s := range sessions {
		if s.Date.Before(weekStart) {
			continue
		}
		days[s.Date] = true
		switch s.Kind {
		case analysis.Strength:
			tonnage += s.Tonnage
		case analysis.Cardio:
			cardioMin += s.DurationMinutes
		}
	}
	return tonnage, cardioMin, len(days)
}

// muscleSetCounts counts strength sets per muscle group.
func muscleSetCounts(sessions []analysis.Session) map[string]int {
	counts := make(map[string]int)
	for _, s := range sessions {
		if s.Kind != analysis.Strength {
			continue
		}
		counts[analysis.MuscleGroup(s.ExerciseName)]++
	}
	return counts
}

// weeklyChart buckets the trailing numWeeks of volume into dense
// parallel arrays for charting, oldest week first.
func weeklyChart(sessions []analysis.Session, asOf time.Time, numWeeks int) (tonnage, cardio []float64, labels []string) {
	tonnage = make([]float64, numWeeks)
	cardio = make([]float64, numWeeks)
	labels = make([]string, numWeeks)

	currentWeek := analysis.WeekStart(asOf)
	for i := 0; i < numWeeks; i++ {
		labels[i] = currentWeek.AddDate(0, 0, -7*(numWeeks-1-i)).Format("Jan 02")
	}

	firstWeek := currentWeek.AddDate(0, 0, -7*(numWeeks-1))
	for _, wv := range analysis.WeeklyVolumes(sessions) {
		if wv.Week.Before(firstWeek) || wv.Week.After(currentWeek) {
			continue
		}
		idx := numWeeks - 1 - int(currentWeek.Sub(wv.Week).Hours()/24/7)
		if idx < 0 || idx >= numWeeks {
			continue
		}
		tonnage[idx] = wv.Tonnage
		for _, min := range wv.CardioMinutes {
			cardio[idx] += min
		}
	}
	return tonnage, cardio, labels
}
