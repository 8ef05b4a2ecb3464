package analysis

import "strings"

// muscleKeywords maps exercise-name fragments to a muscle group.
// Order matters: "romanian deadlift" should land on Post. Chain before
// a later pattern gets a chance.
var muscleKeywords = []struct {
	group    string
	keywords []string
}{
	{"Quads", []string{"squat", "leg press", "lunge", "leg extension"}},
	{"Post. Chain", []string{"deadlift", "rdl", "romanian", "leg curl", "hamstring"}},
	{"Chest", []string{"bench", "chest", "push-up", "fly"}},
	{"Back", []string{"row", "pull", "lat"}},
	{"Shoulders", []string{"press", "shoulder", "overhead"}},
	{"Arms", []string{"curl", "bicep", "tricep", "arm", "pushdown"}},
	{"Calves", []string{"calf"}},
}

// MuscleGroup classifies an exercise name by keyword. Unmatched names
// land in "Other".
func MuscleGroup(exercise string) string {
	lower := strings.ToLower(exercise)
	for _, mk := range muscleKeywords {
		for _, kw := range mk.keywords {
			if strings.Contains(lower, kw) {
				return mk.group
			}
		}
	}
	return "Other"
}

// MuscleBalance sums strength tonnage per muscle group.
func MuscleBalance(sessions []Session) map[string]float64 {
	totals := make(map[string]float64)
	for _, s := range sessions {
		if s.Kind != Strength {
			continue
		}
		totals[MuscleGroup(s.ExerciseName)] += s.Tonnage
	}
	return totals
}

// HRZone buckets an average heart rate into a five-zone model.
// Returns false for sessions with no heart-rate data.
func HRZone(avgHR float64) (string, bool) {
	if avgHR <= 0 {
		return "", false
	}
	switch {
	case avgHR < 130:
		return "Z1", true
	case avgHR < 150:
		return "Z2", true
	case avgHR < 165:
		return "Z3", true
	case avgHR < 180:
		return "Z4", true
	default:
		return "Z5", true
	}
}

// ZoneMinutes sums cardio minutes per heart-rate zone, dropping
// sessions with no heart-rate data.
func ZoneMinutes(sessions []Session) map[string]float64 {
	totals := make(map[string]float64)
	for _, s := range sessions {
		if s.Kind != Cardio {
			continue
		}
		zone, ok := HRZone(s.AvgHeartRate)
		if !ok {
			continue
		}
		totals[zone] += s.DurationMinutes
	}
	return totals
}
