package strava

import (
	"math"
	"time"

	"saker/internal/store"
)

const metersPerMile = 1609.344

// typeMap collapses Strava sport types into the friendly activity
// types the dashboard groups by. Unknown sports pass through as-is.
var typeMap = map[string]string{
	"Run":              "Running",
	"VirtualRun":       "Running",
	"TrailRun":         "Running",
	"Ride":             "Cycling",
	"VirtualRide":      "Cycling",
	"GravelRide":       "Cycling",
	"MountainBikeRide": "Cycling",
	"Walk":             "Walking",
	"Hike":             "Walking",
	"Swim":             "Swimming",
}

// strengthTypes are Strava sports that belong with the lifting log,
// not the cardio table.
var strengthTypes = map[string]bool{
	"WeightTraining": true,
	"Crossfit":       true,
	"Workout":        true,
}

// IsStrength reports whether the activity is a gym session rather
// than cardio.
func IsStrength(a *Activity) bool {
	return strengthTypes[a.Sport()]
}

// Normalize converts a Strava activity into a cardio row. Returns
// false for strength-type activities.
//
// The start date keeps the athlete's wall-clock time: start_date_local
// may carry a misleading offset, so the clock digits are kept and the
// zone is dropped.
func Normalize(a *Activity) (store.CardioActivity, bool) {
	if IsStrength(a) {
		return store.CardioActivity{}, false
	}

	friendly, ok := typeMap[a.Sport()]
	if !ok {
		friendly = a.Sport()
	}

	var avgHR *float64
	if a.HasHeartrate && a.AverageHeartrate > 0 {
		hr := a.AverageHeartrate
		avgHR = &hr
	}

	return store.CardioActivity{
		ID:            a.ID,
		Source:        store.SourceStrava,
		Name:          a.Name,
		ActivityType:  friendly,
		StartDate:     wallClock(a.StartDateLocal),
		DurationMin:   math.Round(float64(a.ElapsedTime)/60*10) / 10,
		DistanceMiles: math.Round(a.Distance/metersPerMile*100) / 100,
		AvgHeartrate:  avgHR,
	}, true
}

// wallClock rebuilds a timestamp with the same clock digits in UTC,
// discarding whatever zone the API attached.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
