package service

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"saker/internal/analysis"
	"saker/internal/store"
)

// LedgerEntry is one row of the recent-activity ledger. Strength
// sessions collapse to one row per day; cardio activities stay one row
// each.
type LedgerEntry struct {
	Date   time.Time
	Tag    string // "Strength" or "Cardio"
	Title  string // workout title or activity type
	Detail string // "18 sets · 24,300 lbs" / "42 min · 5.1 mi"
	Load   string // "Light", "Medium", "High"
}

// GetLedger builds the combined training ledger for the trailing
// LedgerDays, newest first, capped at LedgerMaxRows.
func (q *QueryService) GetLedger(asOf time.Time) ([]LedgerEntry, error) {
	cutoff := analysis.Day(asOf).AddDate(0, 0, -LedgerDays)

	sets, err := q.store.ListStrengthSets()
	if err != nil {
		return nil, err
	}
	activities, err := q.store.ListCardioActivities()
	if err != nil {
		return nil, err
	}

	var entries []LedgerEntry
	entries = append(entries, strengthLedgerRows(sets, cutoff)...)
	for _, a := range activities {
		d := analysis.Day(a.StartDate)
		if d.Before(cutoff) {
			continue
		}
		entries = append(entries, LedgerEntry{
			Date:   d,
			Tag:    "Cardio",
			Title:  a.ActivityType,
			Detail: fmt.Sprintf("%.0f min · %s", a.DurationMin, q.formatDistance(a.DistanceMiles)),
			Load:   cardioLoadLevel(a.DurationMin),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	if len(entries) > LedgerMaxRows {
		entries = entries[:LedgerMaxRows]
	}
	return entries, nil
}

// strengthLedgerRows groups sets by calendar day into one ledger row
// per lifting session.
func strengthLedgerRows(sets []store.StrengthSet, cutoff time.Time) []LedgerEntry {
	type dayAgg struct {
		title   string
		nSets   int
		tonnage float64
	}
	byDay := make(map[time.Time]*dayAgg)
	for _, s := range sets {
		d := analysis.Day(s.PerformedAt)
		if d.Before(cutoff) {
			continue
		}
		agg := byDay[d]
		if agg == nil {
			title := s.WorkoutTitle
			if title == "" {
				title = "Weights"
			}
			agg = &dayAgg{title: title}
			byDay[d] = agg
		}
		agg.nSets++
		agg.tonnage += s.Tonnage()
	}

	rows := make([]LedgerEntry, 0, len(byDay))
	for d, agg := range byDay {
		tonnage := int(agg.tonnage)
		rows = append(rows, LedgerEntry{
			Date:   d,
			Tag:    "Strength",
			Title:  agg.title,
			Detail: fmt.Sprintf("%d sets · %s lbs", agg.nSets, commas(tonnage)),
			Load:   tonnageLoadLevel(tonnage),
		})
	}
	return rows
}

func tonnageLoadLevel(tonnage int) string {
	switch {
	case tonnage > TonnageHighLbs:
		return "High"
	case tonnage > TonnageMediumLbs:
		return "Medium"
	default:
		return "Light"
	}
}

func cardioLoadLevel(durationMin float64) string {
	switch {
	case durationMin > CardioHighMin:
		return "High"
	case durationMin > CardioMediumMin:
		return "Medium"
	default:
		return "Light"
	}
}

// commas formats an integer with thousands separators.
func commas(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
