package main

import (
	"net/http"
	"slices"
	"testing"

	"github.com/myrjola/unbroken/internal/workout"
)

func Test_application_exerciseMaxAffectsComputedWeight(t *testing.T) {
	var (
		ctx    = t.Context()
		server = startSeededServer(t, map[string]string{
			"trainingPlanState": `{"customPlan":[
				{"name":"Powerbuilding Block 1","weeks":3,"type":"powerbuilding1"}]}`,
		})
		client = server.Client()
	)

	findPlan := func(plans []workout.ExercisePlan, exercise string) workout.ExercisePlan {
		t.Helper()
		for _, p := range plans {
			if p.Exercise == exercise {
				return p
			}
		}
		t.Fatalf("exercise %q not in plans %+v", exercise, plans)
		return workout.ExercisePlan{}
	}

	// Day one prescribes 3x5 at 75% of the training max. The starter max for
	// the overhead press is 60 kg.
	var plans []workout.ExercisePlan
	status, err := client.GetJSON(ctx, "/api/workout/exercises", &plans)
	if err != nil {
		t.Fatalf("get exercise plans: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/workout/exercises")
	if got := findPlan(plans, "Overhead Press"); got.Weight != 45 {
		t.Errorf("got overhead press weight %v, want 45", got.Weight)
	}
	if got := findPlan(plans, "Overhead Press"); len(got.Warmups) == 0 {
		t.Error("expected warm-up sets for the overhead press")
	}

	var maxes map[string]float64
	if status, err = client.PostJSON(ctx, "/api/exercises/max",
		map[string]any{"exercise": "Overhead Press", "value": 80}, &maxes); err != nil {
		t.Fatalf("post max: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/exercises/max")
	if maxes["overheadpress"] != 80 {
		t.Errorf("got stored max %v, want 80", maxes["overheadpress"])
	}

	if _, err = client.GetJSON(ctx, "/api/workout/exercises", &plans); err != nil {
		t.Fatalf("get exercise plans after max update: %v", err)
	}
	if got := findPlan(plans, "Overhead Press"); got.Weight != 60 {
		t.Errorf("got overhead press weight %v after max update, want 60", got.Weight)
	}

	// Blank exercise names are rejected.
	if status, err = client.PostJSON(ctx, "/api/exercises/max",
		map[string]any{"exercise": "!!!", "value": 50}, nil); err != nil {
		t.Fatalf("post invalid max: %v", err)
	}
	assertStatus(t, status, http.StatusBadRequest, "/api/exercises/max")

	var tenRMs map[string]float64
	if status, err = client.PostJSON(ctx, "/api/exercises/ten-rm",
		map[string]any{"exercise": "Barbell Row", "value": 60}, &tenRMs); err != nil {
		t.Fatalf("post ten-rm: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/exercises/ten-rm")
	if tenRMs["barbellrow"] != 60 {
		t.Errorf("got stored 10RM %v, want 60", tenRMs["barbellrow"])
	}
}

func Test_application_currentBlockExercises(t *testing.T) {
	var (
		ctx    = t.Context()
		server = startTestServer(t)
		client = server.Client()
	)

	var exercises workout.BlockExercises
	status, err := client.GetJSON(ctx, "/api/exercises/current-block?blockType=powerbuilding1", &exercises)
	if err != nil {
		t.Fatalf("get block exercises: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/exercises/current-block")
	if !slices.Contains(exercises.StrengthExercises, "Front Squat") {
		t.Errorf("strength exercises %v missing Front Squat", exercises.StrengthExercises)
	}
	if !slices.Contains(exercises.HypertrophyExercises, "Barbell Row") {
		t.Errorf("hypertrophy exercises %v missing Barbell Row", exercises.HypertrophyExercises)
	}

	// Unknown block types yield empty lists rather than an error.
	if _, err = client.GetJSON(ctx, "/api/exercises/current-block?blockType=crossfit", &exercises); err != nil {
		t.Fatalf("get unknown block exercises: %v", err)
	}
	if len(exercises.StrengthExercises) != 0 || len(exercises.HypertrophyExercises) != 0 {
		t.Errorf("got %+v for an unknown block, want empty lists", exercises)
	}
}

func Test_application_preferences(t *testing.T) {
	var (
		ctx    = t.Context()
		server = startTestServer(t)
		client = server.Client()
	)

	var prefs struct {
		WeightUnit workout.WeightUnit `json:"weightUnit"`
	}
	status, err := client.GetJSON(ctx, "/api/preferences", &prefs)
	if err != nil {
		t.Fatalf("get preferences: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/preferences")
	if prefs.WeightUnit != workout.UnitKg {
		t.Errorf("got default unit %q, want kg", prefs.WeightUnit)
	}

	if status, err = client.PostJSON(ctx, "/api/preferences",
		map[string]string{"weightUnit": "lbs"}, &prefs); err != nil {
		t.Fatalf("post preferences: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/preferences")
	if prefs.WeightUnit != workout.UnitLbs {
		t.Errorf("got unit %q after update, want lbs", prefs.WeightUnit)
	}

	if status, err = client.PostJSON(ctx, "/api/preferences",
		map[string]string{"weightUnit": "stone"}, nil); err != nil {
		t.Fatalf("post invalid preferences: %v", err)
	}
	assertStatus(t, status, http.StatusBadRequest, "/api/preferences")
}
