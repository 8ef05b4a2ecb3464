package store

import (
	"errors"
	"testing"
	"time"
)

func TestAuthRoundTrip(t *testing.T) {
	db := NewTestStore(t)

	if _, err := db.GetAuth(); !errors.Is(err, ErrNoAuth) {
		t.Errorf("GetAuth() on empty store = %v, want ErrNoAuth", err)
	}

	auth := &Auth{
		AthleteID:    123,
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := db.SaveAuth(auth); err != nil {
		t.Fatalf("SaveAuth() error: %v", err)
	}

	got, err := db.GetAuth()
	if err != nil {
		t.Fatalf("GetAuth() error: %v", err)
	}
	if got.AthleteID != 123 || got.AccessToken != "access" || got.RefreshToken != "refresh" {
		t.Errorf("GetAuth() = %+v, want saved values", got)
	}
	if !got.ExpiresAt.Equal(auth.ExpiresAt) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, auth.ExpiresAt)
	}
}

func TestUpdateTokens(t *testing.T) {
	db := NewTestStore(t)

	if err := db.UpdateTokens("a", "r", time.Now()); !errors.Is(err, ErrNoAuth) {
		t.Errorf("UpdateTokens() before SaveAuth = %v, want ErrNoAuth", err)
	}

	if err := db.SaveAuth(&Auth{AthleteID: 1, AccessToken: "old", RefreshToken: "old", ExpiresAt: time.Now()}); err != nil {
		t.Fatalf("SaveAuth() error: %v", err)
	}
	expires := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if err := db.UpdateTokens("new-access", "new-refresh", expires); err != nil {
		t.Fatalf("UpdateTokens() error: %v", err)
	}

	got, err := db.GetAuth()
	if err != nil {
		t.Fatalf("GetAuth() error: %v", err)
	}
	if got.AccessToken != "new-access" || got.RefreshToken != "new-refresh" {
		t.Errorf("tokens = %s/%s, want new-access/new-refresh", got.AccessToken, got.RefreshToken)
	}
}

func TestReplaceStrengthSets(t *testing.T) {
	db := NewTestStore(t)

	rpe := 8.0
	first := []StrengthSet{
		{
			WorkoutTitle:  "Push Day",
			PerformedAt:   time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC),
			ExerciseTitle: "Bench Press",
			SetIndex:      0,
			SetType:       "normal",
			WeightLbs:     185,
			Reps:          8,
			RPE:           &rpe,
		},
		{
			WorkoutTitle:  "Push Day",
			PerformedAt:   time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC),
			ExerciseTitle: "Bench Press",
			SetIndex:      1,
			WeightLbs:     185,
			Reps:          6,
		},
	}
	if err := db.ReplaceStrengthSets(SourceHevy, first); err != nil {
		t.Fatalf("ReplaceStrengthSets() error: %v", err)
	}

	got, err := db.ListStrengthSets()
	if err != nil {
		t.Fatalf("ListStrengthSets() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(got))
	}
	if got[0].ExerciseTitle != "Bench Press" || got[0].WeightLbs != 185 {
		t.Errorf("set = %+v, want saved values", got[0])
	}
	if got[0].RPE == nil || *got[0].RPE != 8.0 {
		t.Errorf("RPE = %v, want 8.0", got[0].RPE)
	}
	if got[1].RPE != nil {
		t.Errorf("second set RPE = %v, want nil", got[1].RPE)
	}
	if got[0].Tonnage() != 1480 {
		t.Errorf("Tonnage() = %v, want 1480", got[0].Tonnage())
	}

	// Re-importing replaces rather than appends.
	second := []StrengthSet{
		{
			PerformedAt:   time.Date(2024, 2, 1, 18, 0, 0, 0, time.UTC),
			ExerciseTitle: "Squat",
			WeightLbs:     225,
			Reps:          5,
		},
	}
	if err := db.ReplaceStrengthSets(SourceHevy, second); err != nil {
		t.Fatalf("ReplaceStrengthSets() second import error: %v", err)
	}
	got, err = db.ListStrengthSets()
	if err != nil {
		t.Fatalf("ListStrengthSets() error: %v", err)
	}
	if len(got) != 1 || got[0].ExerciseTitle != "Squat" {
		t.Errorf("after re-import: %+v, want single Squat set", got)
	}
}

func TestReplaceStrengthSetsKeepsOtherSources(t *testing.T) {
	db := NewTestStore(t)

	demo := []StrengthSet{{
		PerformedAt:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		ExerciseTitle: "Deadlift",
		WeightLbs:     315,
		Reps:          3,
	}}
	if err := db.ReplaceStrengthSets(SourceDemo, demo); err != nil {
		t.Fatalf("ReplaceStrengthSets(demo) error: %v", err)
	}
	if err := db.ReplaceStrengthSets(SourceHevy, nil); err != nil {
		t.Fatalf("ReplaceStrengthSets(hevy) error: %v", err)
	}

	got, err := db.ListStrengthSets()
	if err != nil {
		t.Fatalf("ListStrengthSets() error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("clearing hevy wiped demo rows: got %d sets, want 1", len(got))
	}
}

func TestCountStrengthSets(t *testing.T) {
	db := NewTestStore(t)

	sets := []StrengthSet{
		{PerformedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), ExerciseTitle: "Squat", WeightLbs: 225, Reps: 5},
		{PerformedAt: time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC), ExerciseTitle: "Squat", WeightLbs: 225, Reps: 5},
		{PerformedAt: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC), ExerciseTitle: "Bench Press", WeightLbs: 185, Reps: 8},
	}
	if err := db.ReplaceStrengthSets(SourceHevy, sets); err != nil {
		t.Fatalf("ReplaceStrengthSets() error: %v", err)
	}

	count, days, err := db.CountStrengthSets()
	if err != nil {
		t.Fatalf("CountStrengthSets() error: %v", err)
	}
	if count != 3 || days != 2 {
		t.Errorf("CountStrengthSets() = %d sets, %d days, want 3 sets, 2 days", count, days)
	}
}

func TestHasRealStrengthData(t *testing.T) {
	db := NewTestStore(t)

	demo := []StrengthSet{{PerformedAt: time.Now().UTC(), ExerciseTitle: "Squat", WeightLbs: 135, Reps: 5}}
	if err := db.ReplaceStrengthSets(SourceDemo, demo); err != nil {
		t.Fatalf("ReplaceStrengthSets(demo) error: %v", err)
	}
	real, err := db.HasRealStrengthData()
	if err != nil {
		t.Fatalf("HasRealStrengthData() error: %v", err)
	}
	if real {
		t.Error("demo-only store should not count as real data")
	}

	if err := db.ReplaceStrengthSets(SourceHevy, demo); err != nil {
		t.Fatalf("ReplaceStrengthSets(hevy) error: %v", err)
	}
	real, err = db.HasRealStrengthData()
	if err != nil {
		t.Fatalf("HasRealStrengthData() error: %v", err)
	}
	if !real {
		t.Error("hevy rows should count as real data")
	}
}

func TestUpsertCardioActivity(t *testing.T) {
	db := NewTestStore(t)

	hr := 148.0
	a := &CardioActivity{
		ID:            1001,
		Source:        SourceStrava,
		Name:          "Morning Run",
		ActivityType:  "Running",
		StartDate:     time.Date(2024, 1, 5, 7, 0, 0, 0, time.UTC),
		DurationMin:   42.5,
		DistanceMiles: 5.1,
		AvgHeartrate:  &hr,
	}
	if err := db.UpsertCardioActivity(a); err != nil {
		t.Fatalf("UpsertCardioActivity() error: %v", err)
	}

	// Upserting the same ID updates in place.
	a.Name = "Morning Run (corrected)"
	a.DurationMin = 43
	if err := db.UpsertCardioActivity(a); err != nil {
		t.Fatalf("UpsertCardioActivity() update error: %v", err)
	}

	got, err := db.ListCardioActivities()
	if err != nil {
		t.Fatalf("ListCardioActivities() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(got))
	}
	if got[0].Name != "Morning Run (corrected)" || got[0].DurationMin != 43 {
		t.Errorf("activity = %+v, want updated values", got[0])
	}
	if got[0].AvgHeartrate == nil || *got[0].AvgHeartrate != 148 {
		t.Errorf("AvgHeartrate = %v, want 148", got[0].AvgHeartrate)
	}
}

func TestLatestCardioStart(t *testing.T) {
	db := NewTestStore(t)

	zero, err := db.LatestCardioStart(SourceStrava)
	if err != nil {
		t.Fatalf("LatestCardioStart() error: %v", err)
	}
	if !zero.IsZero() {
		t.Errorf("empty store latest start = %v, want zero time", zero)
	}

	dates := []time.Time{
		time.Date(2024, 1, 5, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 9, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 7, 7, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		a := &CardioActivity{
			ID:           int64(i + 1),
			Source:       SourceStrava,
			ActivityType: "Running",
			StartDate:    d,
			DurationMin:  30,
		}
		if err := db.UpsertCardioActivity(a); err != nil {
			t.Fatalf("UpsertCardioActivity() error: %v", err)
		}
	}

	got, err := db.LatestCardioStart(SourceStrava)
	if err != nil {
		t.Fatalf("LatestCardioStart() error: %v", err)
	}
	want := time.Date(2024, 1, 9, 7, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("LatestCardioStart() = %v, want %v", got, want)
	}

	// Other sources don't leak into the answer.
	other, err := db.LatestCardioStart(SourceDemo)
	if err != nil {
		t.Fatalf("LatestCardioStart(demo) error: %v", err)
	}
	if !other.IsZero() {
		t.Errorf("demo latest start = %v, want zero time", other)
	}
}

func TestLastActivitySync(t *testing.T) {
	db := NewTestStore(t)

	got, err := db.LastActivitySync()
	if err != nil {
		t.Fatalf("LastActivitySync() error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("fresh store cursor = %v, want zero time", got)
	}

	first := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	second := time.Date(2024, 5, 3, 9, 30, 0, 0, time.UTC)
	if err := db.SetLastActivitySync(first); err != nil {
		t.Fatalf("SetLastActivitySync() error: %v", err)
	}
	if err := db.SetLastActivitySync(second); err != nil {
		t.Fatalf("SetLastActivitySync() overwrite error: %v", err)
	}

	got, err = db.LastActivitySync()
	if err != nil {
		t.Fatalf("LastActivitySync() error: %v", err)
	}
	if !got.Equal(second) {
		t.Errorf("LastActivitySync() = %v, want %v", got, second)
	}
}

func TestLastActivitySyncUnparseableValue(t *testing.T) {
	db := NewTestStore(t)

	if _, err := db.Exec(`INSERT INTO sync_state (key, value) VALUES (?, ?)`,
		"last_activity_sync", "not-a-timestamp"); err != nil {
		t.Fatalf("seeding bad cursor: %v", err)
	}

	got, err := db.LastActivitySync()
	if err != nil {
		t.Fatalf("LastActivitySync() error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("bad cursor = %v, want zero time", got)
	}
}
