package service

import (
	"fmt"

	"saker/internal/analysis"
	"saker/internal/store"
)

// QueryService provides read-only queries for the TUI
type QueryService struct {
	store        *store.DB
	distanceUnit string // "mi" or "km"
}

// NewQueryService creates a new query service. distanceUnit controls
// how cardio distances are displayed; an empty value means miles.
func NewQueryService(store *store.DB, distanceUnit string) *QueryService {
	if distanceUnit == "" {
		distanceUnit = "mi"
	}
	return &QueryService{store: store, distanceUnit: distanceUnit}
}

// formatDistance renders a stored miles value in the configured
// display unit.
func (q *QueryService) formatDistance(miles float64) string {
	if q.distanceUnit == "km" {
		return fmt.Sprintf("%.1f km", miles*1.60934)
	}
	return fmt.Sprintf("%.1f mi", miles)
}

// loadSessions reads every stored strength set and cardio activity and
// flattens them into the normalized session table the analysis package
// works on. usingDemo is true when nothing but generated sample data
// is present.
func (q *QueryService) loadSessions() (sessions []analysis.Session, usingDemo bool, err error) {
	sets, err := q.store.ListStrengthSets()
	if err != nil {
		return nil, false, err
	}
	activities, err := q.store.ListCardioActivities()
	if err != nil {
		return nil, false, err
	}

	realRows := false
	for _, s := range sets {
		if s.Source != store.SourceDemo {
			realRows = true
		}
		sessions = append(sessions, analysis.Session{
			Date:         analysis.Day(s.PerformedAt),
			Kind:         analysis.Strength,
			ExerciseName: s.ExerciseTitle,
			Tonnage:      s.Tonnage(),
		})
	}
	for _, a := range activities {
		if a.Source != store.SourceDemo {
			realRows = true
		}
		var hr float64
		if a.AvgHeartrate != nil {
			hr = *a.AvgHeartrate
		}
		sessions = append(sessions, analysis.Session{
			Date:            analysis.Day(a.StartDate),
			Kind:            analysis.Cardio,
			ActivityType:    a.ActivityType,
			DurationMinutes: a.DurationMin,
			DistanceMiles:   a.DistanceMiles,
			AvgHeartRate:    hr,
		})
	}

	usingDemo = len(sessions) > 0 && !realRows
	return sessions, usingDemo, nil
}
