package analysis

import "math"

const metersPerMile = 1609.344

// effortBucketTolerance is the distance slack on each side of a
// standard race distance when scanning for best efforts.
const effortBucketTolerance = 0.15

// RaceDistance is a standard race distance used by both the best-effort
// scan and the race predictor.
type RaceDistance struct {
	Label  string
	Km     float64 // predictor distance
	Meters float64 // exact bucket center for effort matching
}

// RaceDistances lists the supported distances in ascending order.
var RaceDistances = []RaceDistance{
	{Label: "5K", Km: 5.0, Meters: 5000},
	{Label: "10K", Km: 10.0, Meters: 10000},
	{Label: "Half Marathon", Km: 21.1, Meters: 21097},
	{Label: "Marathon", Km: 42.2, Meters: 42195},
}

// BestEffort is the fastest recorded run near one standard distance.
type BestEffort struct {
	Distance RaceDistance
	Minutes  float64
}

// BestRunEfforts scans running sessions for the fastest time at each
// standard distance, accepting runs within 15% of the nominal
// distance. Distances with no qualifying run are absent.
func BestRunEfforts(sessions []Session) map[string]BestEffort {
	best := make(map[string]BestEffort)
	for _, s := range sessions {
		if s.Kind != Cardio || s.ActivityType != "Running" {
			continue
		}
		meters := s.DistanceMiles * metersPerMile
		if meters <= 0 || s.DurationMinutes <= 0 {
			continue
		}
		for _, rd := range RaceDistances {
			lo := rd.Meters * (1 - effortBucketTolerance)
			hi := rd.Meters * (1 + effortBucketTolerance)
			if meters < lo || meters > hi {
				continue
			}
			minutes := math.Round(s.DurationMinutes*10) / 10
			if cur, ok := best[rd.Label]; !ok || minutes < cur.Minutes {
				best[rd.Label] = BestEffort{Distance: rd, Minutes: minutes}
			}
		}
	}
	return best
}
