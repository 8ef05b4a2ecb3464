package analysis

import (
	"math"
	"sort"
	"strings"
	"time"
)

// legKeywords flag a strength exercise as lower-body work. Matching is
// a case-insensitive substring test.
var legKeywords = []string{"squat", "leg press", "lunge", "leg curl", "leg extension", "calf"}

// IsLegExercise reports whether an exercise name counts as leg work.
func IsLegExercise(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range legKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// InterferenceResult counts scheduling collisions between leg days and
// runs. LSL48: a run lands 1-2 days before a leg session (legs on
// pre-fatigued tissue). LEL24: a run lands within 1 day after a leg
// session (running on damaged tissue).
type InterferenceResult struct {
	Score  int // 0-100
	LSL48  int
	LEL24  int
	Events int
	Status string
}

// Interference scans every (leg day, run day) pair across the whole
// history and scores collision density relative to the number of leg
// days. Status is "No Data" when either side is empty.
func Interference(sessions []Session) InterferenceResult {
	var legDays, runDays []time.Time
	seenLeg := make(map[time.Time]bool)
	seenRun := make(map[time.Time]bool)
	for _, s := range sessions {
		d := Day(s.Date)
		switch {
		case s.Kind == Strength && IsLegExercise(s.ExerciseName):
			if !seenLeg[d] {
				seenLeg[d] = true
				legDays = append(legDays, d)
			}
		case s.Kind == Cardio && s.ActivityType == "Running":
			if !seenRun[d] {
				seenRun[d] = true
				runDays = append(runDays, d)
			}
		}
	}
	if len(legDays) == 0 || len(runDays) == 0 {
		return InterferenceResult{Status: "No Data"}
	}
	sort.Slice(legDays, func(i, j int) bool { return legDays[i].Before(legDays[j]) })
	sort.Slice(runDays, func(i, j int) bool { return runDays[i].Before(runDays[j]) })

	var lsl48, lel24 int
	for _, leg := range legDays {
		for _, run := range runDays {
			diff := int(run.Sub(leg).Hours() / 24)
			switch {
			case diff >= -2 && diff < 0:
				lsl48++
			case diff > 0 && diff <= 1:
				lel24++
			}
		}
	}

	events := lsl48 + lel24
	score := int(math.Round(float64(events) / float64(len(legDays)) * 100))
	if score > 100 {
		score = 100
	}
	return InterferenceResult{
		Score:  score,
		LSL48:  lsl48,
		LEL24:  lel24,
		Events: events,
		Status: interferenceStatus(score),
	}
}

func interferenceStatus(score int) string {
	switch {
	case score < 30:
		return "Low Risk"
	case score < 60:
		return "Moderate"
	default:
		return "High Risk"
	}
}
