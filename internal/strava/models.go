package strava

import "time"

// Activity represents a Strava activity from the API
type Activity struct {
	ID               int64     `json:"id"`
	Athlete          Athlete   `json:"athlete"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	SportType        string    `json:"sport_type"`
	StartDate        time.Time `json:"start_date"`
	StartDateLocal   time.Time `json:"start_date_local"`
	Timezone         string    `json:"timezone"`
	Distance         float64   `json:"distance"`          // meters
	MovingTime       int       `json:"moving_time"`       // seconds
	ElapsedTime      int       `json:"elapsed_time"`      // seconds
	AverageSpeed     float64   `json:"average_speed"`     // m/s
	AverageHeartrate float64   `json:"average_heartrate"` // bpm, 0 when absent
	MaxHeartrate     float64   `json:"max_heartrate"`     // bpm
	HasHeartrate     bool      `json:"has_heartrate"`
}

// Athlete represents a Strava athlete (minimal info in activity response)
type Athlete struct {
	ID int64 `json:"id"`
}

// Sport returns sport_type, falling back to the legacy type field.
func (a *Activity) Sport() string {
	if a.SportType != "" {
		return a.SportType
	}
	return a.Type
}
