package store

import "time"

// Data sources tracked per row. Re-importing a source replaces its rows.
const (
	SourceHevy   = "hevy"
	SourceStrava = "strava"
	SourceDemo   = "demo"
)

// Auth represents OAuth tokens for Strava API access
type Auth struct {
	AthleteID    int64     `db:"athlete_id"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at"`
}

// StrengthSet represents one logged set of a strength exercise
type StrengthSet struct {
	ID            int64     `db:"id"`
	Source        string    `db:"source"`
	WorkoutTitle  string    `db:"workout_title"`
	PerformedAt   time.Time `db:"performed_at"`
	ExerciseTitle string    `db:"exercise_title"`
	SetIndex      int       `db:"set_index"`
	SetType       string    `db:"set_type"` // "normal", "warmup", "failure", ...
	WeightLbs     float64   `db:"weight_lbs"`
	Reps          int       `db:"reps"`
	RPE           *float64  `db:"rpe"` // nullable
}

// Tonnage is the volume load of the set: weight times reps.
func (s StrengthSet) Tonnage() float64 {
	return s.WeightLbs * float64(s.Reps)
}

// CardioActivity represents a normalized cardio session
type CardioActivity struct {
	ID            int64     `db:"id"`
	Source        string    `db:"source"`
	Name          string    `db:"name"`
	ActivityType  string    `db:"activity_type"` // "Running", "Cycling", "Walking", ...
	StartDate     time.Time `db:"start_date"`
	DurationMin   float64   `db:"duration_min"`
	DistanceMiles float64   `db:"distance_miles"`
	AvgHeartrate  *float64  `db:"avg_heartrate"` // nullable
}
