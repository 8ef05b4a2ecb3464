package analysis

import (
	"math"
	"sort"
	"time"
)

// Kind discriminates the two session families in the normalized table.
type Kind int

const (
	Strength Kind = iota
	Cardio
)

// Session is one row of the normalized training table. Strength rows
// carry an exercise name and tonnage (weight x reps, lbs); cardio rows
// carry an activity type, duration, and optional distance/heart rate.
// Missing numeric fields are zero and count as zero load.
type Session struct {
	Date            time.Time // calendar date at UTC midnight
	Kind            Kind
	ExerciseName    string  // strength only
	Tonnage         float64 // lbs, strength only
	DurationMinutes float64
	ActivityType    string // cardio: "Running", "Cycling", "Walking", ...
	DistanceMiles   float64
	AvgHeartRate    float64 // 0 when the device reported none
}

// Day normalizes a time to its calendar date at UTC midnight.
// All windowing in this package compares dates at this resolution.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DailyPoint is one (date, value) pair of a per-day summed series.
type DailyPoint struct {
	Date  time.Time
	Value float64
}

// DailyTotals groups sessions by calendar date, sums value for each
// day, and returns the series sorted by date. Days with no sessions
// are absent, not zero.
func DailyTotals(sessions []Session, value func(Session) float64) []DailyPoint {
	totals := make(map[time.Time]float64)
	for _, s := range sessions {
		totals[Day(s.Date)] += value(s)
	}

	points := make([]DailyPoint, 0, len(totals))
	for d, v := range totals {
		points = append(points, DailyPoint{Date: d, Value: v})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// Window returns the entries of series dated on or after asOf-days.
// An empty result is not an error; callers decide what no data means.
func Window(series []DailyPoint, asOf time.Time, days int) []DailyPoint {
	cutoff := Day(asOf).AddDate(0, 0, -days)
	var out []DailyPoint
	for _, p := range series {
		if !p.Date.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out
}

// TonnageLoad selects the strength load contribution of a session.
func TonnageLoad(s Session) float64 {
	if s.Kind != Strength {
		return 0
	}
	return s.Tonnage
}

// DurationLoad selects the cardio load contribution of a session.
func DurationLoad(s Session) float64 {
	if s.Kind != Cardio {
		return 0
	}
	return s.DurationMinutes
}

// CombinedLoad puts strength and cardio on one scale: tonnage divided
// by 1000 lands in the same order of magnitude as session minutes.
func CombinedLoad(s Session) float64 {
	if s.Kind == Strength {
		return s.Tonnage / 1000
	}
	return s.DurationMinutes
}

func ofKind(sessions []Session, k Kind) []Session {
	var out []Session
	for _, s := range sessions {
		if s.Kind == k {
			out = append(out, s)
		}
	}
	return out
}

func seriesMean(series []DailyPoint) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, p := range series {
		sum += p.Value
	}
	return sum / float64(len(series))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
