package analysis

import (
	"sort"
	"time"
)

// WeekStart returns the Monday of the week containing t, at UTC
// midnight.
func WeekStart(t time.Time) time.Time {
	d := Day(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeeklyVolume is one week's training volume: cardio minutes broken
// out by activity type plus total lifting tonnage.
type WeeklyVolume struct {
	Week          time.Time
	CardioMinutes map[string]float64
	Tonnage       float64
}

// WeeklyVolumes aggregates sessions into Monday-anchored weeks, sorted
// ascending. Weeks with no sessions are absent.
func WeeklyVolumes(sessions []Session) []WeeklyVolume {
	byWeek := make(map[time.Time]*WeeklyVolume)
	for _, s := range sessions {
		wk := WeekStart(s.Date)
		wv := byWeek[wk]
		if wv == nil {
			wv = &WeeklyVolume{Week: wk, CardioMinutes: make(map[string]float64)}
			byWeek[wk] = wv
		}
		switch s.Kind {
		case Strength:
			wv.Tonnage += s.Tonnage
		case Cardio:
			wv.CardioMinutes[s.ActivityType] += s.DurationMinutes
		}
	}

	out := make([]WeeklyVolume, 0, len(byWeek))
	for _, wv := range byWeek {
		out = append(out, *wv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week.Before(out[j].Week) })
	return out
}
