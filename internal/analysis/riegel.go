package analysis

import (
	"fmt"
	"math"
)

// riegelExponent is the fatigue exponent of Riegel's endurance model.
const riegelExponent = 1.06

// RacePrediction is a projected race time with its h/m/s breakdown and
// per-km pace.
type RacePrediction struct {
	Minutes float64 // total predicted time, minutes

	Hours, Mins, Secs int

	PaceMin, PaceSec int // min/km pace components
}

// PredictRace projects a race time from a reference effort using
// Riegel's formula: T2 = T1 * (D2/D1)^1.06. Distances are kilometers,
// time is minutes.
func PredictRace(refDistanceKm, refTimeMin, targetDistanceKm float64) (RacePrediction, error) {
	if refDistanceKm <= 0 {
		return RacePrediction{}, fmt.Errorf("reference distance must be positive, got %g", refDistanceKm)
	}
	if targetDistanceKm <= 0 {
		return RacePrediction{}, fmt.Errorf("target distance must be positive, got %g", targetDistanceKm)
	}

	predicted := refTimeMin * math.Pow(targetDistanceKm/refDistanceKm, riegelExponent)
	pace := predicted / targetDistanceKm

	return RacePrediction{
		Minutes: predicted,
		Hours:   int(predicted / 60),
		Mins:    int(math.Mod(predicted, 60)),
		Secs:    int(math.Mod(predicted, 1) * 60),
		PaceMin: int(pace),
		PaceSec: int(math.Mod(pace, 1) * 60),
	}, nil
}

// FormatTime renders the prediction as H:MM:SS, or M:SS under an hour.
func (p RacePrediction) FormatTime() string {
	if p.Hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", p.Hours, p.Mins, p.Secs)
	}
	return fmt.Sprintf("%d:%02d", p.Mins, p.Secs)
}

// FormatPace renders the per-km pace as M:SS/km.
func (p RacePrediction) FormatPace() string {
	return fmt.Sprintf("%d:%02d/km", p.PaceMin, p.PaceSec)
}
