package service

import (
	"saker/internal/analysis"
)

// DistancePrediction pairs a target race distance with its projected
// time.
type DistancePrediction struct {
	Distance   analysis.RaceDistance
	Prediction analysis.RacePrediction
}

// PredictAll projects times for every standard race distance from one
// reference effort.
func (q *QueryService) PredictAll(refKm, refMinutes float64) ([]DistancePrediction, error) {
	out := make([]DistancePrediction, 0, len(analysis.RaceDistances))
	for _, rd := range analysis.RaceDistances {
		p, err := analysis.PredictRace(refKm, refMinutes, rd.Km)
		if err != nil {
			return nil, err
		}
		out = append(out, DistancePrediction{Distance: rd, Prediction: p})
	}
	return out, nil
}

// ReferenceFromHistory picks a default reference effort for the race
// predictor: the best recorded effort at the shortest distance that
// has one. ok is false when no run matched any standard distance.
func (q *QueryService) ReferenceFromHistory() (analysis.BestEffort, bool, error) {
	sessions, _, err := q.loadSessions()
	if err != nil {
		return analysis.BestEffort{}, false, err
	}
	best := analysis.BestRunEfforts(sessions)
	for _, rd := range analysis.RaceDistances {
		if effort, ok := best[rd.Label]; ok {
			return effort, true, nil
		}
	}
	return analysis.BestEffort{}, false, nil
}
