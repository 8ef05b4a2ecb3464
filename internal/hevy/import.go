// Package hevy parses Hevy workout-export CSVs into strength-set rows.
package hevy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"saker/internal/store"
)

// ErrMissingColumns is returned when the CSV lacks the columns a Hevy
// export always carries.
var ErrMissingColumns = errors.New("not a Hevy export: missing required columns")

// Hevy writes timestamps like "09 Mar 2024, 18:01". Older exports used
// RFC 3339.
var timeLayouts = []string{
	"2 Jan 2006, 15:04",
	"02 Jan 2006, 15:04",
	time.RFC3339,
}

// ParseCSV reads a Hevy export and returns one StrengthSet per row.
// Column order doesn't matter; unknown columns are ignored. Rows with
// an unparseable date or an empty exercise name are skipped, and
// missing numeric fields count as zero.
func ParseCSV(r io.Reader) ([]store.StrengthSet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"start_time", "exercise_title"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumns, required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var sets []store.StrengthSet
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		exercise := field(record, "exercise_title")
		if exercise == "" {
			continue
		}
		performedAt, ok := parseTime(field(record, "start_time"))
		if !ok {
			continue
		}

		set := store.StrengthSet{
			Source:        store.SourceHevy,
			WorkoutTitle:  field(record, "title"),
			PerformedAt:   performedAt,
			ExerciseTitle: exercise,
			SetIndex:      parseInt(field(record, "set_index")),
			SetType:       field(record, "set_type"),
			WeightLbs:     parseFloat(field(record, "weight_lbs")),
			Reps:          parseInt(field(record, "reps")),
		}
		if rpe := field(record, "rpe"); rpe != "" {
			if v, err := strconv.ParseFloat(rpe, 64); err == nil {
				set.RPE = &v
			}
		}
		sets = append(sets, set)
	}

	return sets, nil
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
