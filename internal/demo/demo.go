// Package demo generates a deterministic sample training history so
// the dashboard has something to show before any real data is loaded.
package demo

import (
	"math/rand"
	"time"

	"saker/internal/store"
)

// Days is the default length of the generated history.
const Days = 120

// rampDays is the closing stretch with inflated volume, so the sample
// history lands in the "Peaking" phase instead of flat maintenance.
const rampDays = 10

type exercise struct {
	name string
	low  float64 // working weight range, lbs
	high float64
}

var exercises = map[string][]exercise{
	"Push": {
		{"Bench Press (Barbell)", 185, 225},
		{"Overhead Press (Barbell)", 95, 135},
		{"Incline Dumbbell Press", 55, 80},
		{"Cable Flyes", 30, 50},
		{"Tricep Pushdown", 50, 80},
	},
	"Pull": {
		{"Deadlift (Barbell)", 225, 365},
		{"Barbell Row", 135, 205},
		{"Pull Up", 0, 45},
		{"Face Pull", 30, 50},
		{"Barbell Curl", 55, 85},
	},
	"Legs": {
		{"Squat (Barbell)", 185, 315},
		{"Romanian Deadlift (Barbell)", 165, 245},
		{"Leg Press", 270, 450},
		{"Leg Curl (Machine)", 80, 130},
		{"Calf Raise (Machine)", 135, 225},
	},
	"Upper": {
		{"Bench Press (Barbell)", 185, 225},
		{"Barbell Row", 135, 205},
		{"Overhead Press (Barbell)", 95, 135},
		{"Pull Up", 0, 45},
		{"Dumbbell Curl", 30, 45},
	},
}

var splitRotation = []string{"Push", "Pull", "Legs", "Push", "Pull", "Legs", "Upper"}

type cardioKind struct {
	activityType     string
	minDur, maxDur   float64 // minutes
	minDist, maxDist float64 // miles
}

var cardioKinds = []cardioKind{
	{"Running", 25, 55, 3.0, 7.0},
	{"Cycling", 30, 75, 8.0, 25.0},
	{"Walking", 20, 45, 1.0, 3.5},
}

// StrengthSets generates a push/pull/legs lifting history ending the
// day before today. Sundays and every third Thursday are rest days.
// The same rng seed always produces the same history.
func StrengthSets(rng *rand.Rand, today time.Time, days int) []store.StrengthSet {
	start := midnight(today).AddDate(0, 0, -days)

	var sets []store.StrengthSet
	splitIdx := 0
	for dayOffset := 0; dayOffset < days; dayOffset++ {
		d := start.AddDate(0, 0, dayOffset)
		if d.Weekday() == time.Sunday || (d.Weekday() == time.Thursday && dayOffset%3 == 0) {
			continue
		}

		split := splitRotation[splitIdx%len(splitRotation)]
		splitIdx++

		startTime := d.Add(7*time.Hour + 30*time.Minute)
		ramping := days-dayOffset <= rampDays
		volumeMult := 1.0
		setChoices := []int{3, 4, 4, 5}
		if ramping {
			volumeMult = 1.45
			setChoices = []int{4, 5, 5, 6}
		}

		for _, ex := range exercises[split] {
			nSets := setChoices[rng.Intn(len(setChoices))]
			for s := 0; s < nSets; s++ {
				lo := ex.low * volumeMult
				hi := ex.high * volumeMult
				weight := float64(int((lo+rng.Float64()*(hi-lo))/5+0.5)) * 5
				reps := []int{5, 6, 8, 8, 10, 10, 12}[rng.Intn(7)]
				rpe := float64(int((6.5+rng.Float64()*3)*10+0.5)) / 10

				sets = append(sets, store.StrengthSet{
					Source:        store.SourceDemo,
					WorkoutTitle:  split,
					PerformedAt:   startTime,
					ExerciseTitle: ex.name,
					SetIndex:      s,
					SetType:       "normal",
					WeightLbs:     weight,
					Reps:          reps,
					RPE:           &rpe,
				})
			}
		}
	}

	return sets
}

// CardioActivities generates roughly four cardio sessions a week of
// mixed running, cycling, and walking. IDs are negative so they can
// never collide with synced Strava activities.
func CardioActivities(rng *rand.Rand, today time.Time, days int) []store.CardioActivity {
	start := midnight(today).AddDate(0, 0, -days)

	var activities []store.CardioActivity
	for dayOffset := 0; dayOffset < days; dayOffset++ {
		if rng.Float64() < 0.43 {
			continue
		}
		d := start.AddDate(0, 0, dayOffset)
		kind := cardioKinds[rng.Intn(len(cardioKinds))]

		duration := float64(int((kind.minDur+rng.Float64()*(kind.maxDur-kind.minDur))*10+0.5)) / 10
		distance := float64(int((kind.minDist+rng.Float64()*(kind.maxDist-kind.minDist))*100+0.5)) / 100
		hr := float64(125 + rng.Intn(41))

		activities = append(activities, store.CardioActivity{
			ID:            -int64(dayOffset + 1),
			Source:        store.SourceDemo,
			Name:          "Demo " + kind.activityType,
			ActivityType:  kind.activityType,
			StartDate:     d.Add(17 * time.Hour),
			DurationMin:   duration,
			DistanceMiles: distance,
			AvgHeartrate:  &hr,
		})
	}

	return activities
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
