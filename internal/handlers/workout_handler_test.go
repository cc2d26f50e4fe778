package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ZainUlabideen460/fitness-app/internal/models"
)

type stubWorkoutStore struct {
	nextPlanID    int64
	createErr     error
	lastPlan      *models.WorkoutPlan
	lastExercises []models.Exercise
	allPlans      []models.WorkoutPlan
	prebuiltPlans []models.WorkoutPlan
	byCategory    map[string][]models.WorkoutPlan
	categories    []string
	exercises     map[int64][]models.Exercise
}

func newStubWorkoutStore() *stubWorkoutStore {
	return &stubWorkoutStore{
		nextPlanID: 1,
		byCategory: map[string][]models.WorkoutPlan{},
		exercises:  map[int64][]models.Exercise{},
	}
}

func (s *stubWorkoutStore) CreatePlanWithExercises(_ context.Context, plan *models.WorkoutPlan, exercises []models.Exercise) error {
	if s.createErr != nil {
		return s.createErr
	}
	plan.ID = s.nextPlanID
	plan.CreatedAt = time.Now()
	s.nextPlanID++
	for i := range exercises {
		exercises[i].WorkoutID = plan.ID
	}
	s.lastPlan = plan
	s.lastExercises = exercises
	s.exercises[plan.ID] = exercises
	return nil
}

func (s *stubWorkoutStore) ListAll(_ context.Context) ([]models.WorkoutPlan, error) {
	return s.allPlans, nil
}

func (s *stubWorkoutStore) ListPrebuilt(_ context.Context) ([]models.WorkoutPlan, error) {
	return s.prebuiltPlans, nil
}

func (s *stubWorkoutStore) ListByCategory(_ context.Context, category string) ([]models.WorkoutPlan, error) {
	return s.byCategory[category], nil
}

func (s *stubWorkoutStore) ListCategories(_ context.Context) ([]string, error) {
	return s.categories, nil
}

func (s *stubWorkoutStore) ListExercises(_ context.Context, workoutID int64) ([]models.Exercise, error) {
	return s.exercises[workoutID], nil
}

func newWorkoutApp(store *stubWorkoutStore) *fiber.App {
	handler := NewWorkoutHandler(store)
	app := fiber.New()
	app.Get("/workouts", handler.GetPrebuiltPlans)
	app.Post("/workouts", handler.CreateCustomWorkout)
	app.Get("/api/workouts", handler.GetWorkoutPlans)
	app.Get("/api/workouts/categories", handler.GetCategories)
	app.Get("/api/workouts/category/:category", handler.GetPlansByCategory)
	return app
}

func TestCreateCustomWorkoutRoundTripsExercises(t *testing.T) {
	store := newStubWorkoutStore()
	app := newWorkoutApp(store)

	body := map[string]any{
		"title":       "Push Day",
		"category":    "strength",
		"description": "Upper body push",
		"duration":    "45 min",
		"difficulty":  "intermediate",
		"created_by":  7,
		"exercises": []map[string]any{
			{"exercise_name": "Bench Press", "sets": 4, "reps": 8, "rest_time": 90},
			{"exercise_name": "Overhead Press", "sets": 3, "reps": 10},
			{"exercise_name": "Push Up"},
		},
	}
	resp := postJSON(t, app, "/workouts", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var payload struct {
		Message string `json:"message"`
		PlanID  int64  `json:"plan_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.PlanID != 1 {
		t.Fatalf("expected plan_id 1, got %d", payload.PlanID)
	}
	if store.lastPlan.IsPrebuilt {
		t.Fatalf("expected custom plans to never be prebuilt")
	}
	if len(store.lastExercises) != 3 {
		t.Fatalf("expected 3 exercises, got %d", len(store.lastExercises))
	}
	if store.lastExercises[0].ExerciseName != "Bench Press" ||
		store.lastExercises[1].ExerciseName != "Overhead Press" ||
		store.lastExercises[2].ExerciseName != "Push Up" {
		t.Fatalf("expected exercises in submitted order, got %+v", store.lastExercises)
	}
	if store.lastExercises[0].Sets == nil || *store.lastExercises[0].Sets != 4 {
		t.Fatalf("expected sets 4 on the first exercise, got %+v", store.lastExercises[0].Sets)
	}
	if store.lastExercises[1].RestTime != nil {
		t.Fatalf("expected rest_time to stay nil when omitted")
	}
	if store.lastExercises[2].Sets != nil || store.lastExercises[2].Reps != nil {
		t.Fatalf("expected omitted fields to stay nil, got %+v", store.lastExercises[2])
	}

	// The created plan must serialize with exactly the submitted exercises.
	listReq := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	store.allPlans = []models.WorkoutPlan{*store.lastPlan}
	listResp, err := app.Test(listReq)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer listResp.Body.Close()

	var plans []map[string]any
	if err := json.NewDecoder(listResp.Body).Decode(&plans); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
	exercises, ok := plans[0]["exercises"].([]any)
	if !ok || len(exercises) != 3 {
		t.Fatalf("expected 3 serialized exercises, got %v", plans[0]["exercises"])
	}
	first, ok := exercises[0].(map[string]any)
	if !ok || first["exercise_name"] != "Bench Press" {
		t.Fatalf("unexpected first exercise: %v", exercises[0])
	}
}

func TestCreateCustomWorkoutMissingFields(t *testing.T) {
	store := newStubWorkoutStore()
	app := newWorkoutApp(store)

	cases := []map[string]any{
		{"category": "strength", "description": "d", "duration": "45", "difficulty": "easy", "created_by": 7, "exercises": []any{}},
		{"title": "t", "description": "d", "duration": "45", "difficulty": "easy", "created_by": 7, "exercises": []any{}},
		{"title": "t", "category": "c", "description": "d", "duration": "45", "difficulty": "easy", "exercises": []any{}},
		{"title": "t", "category": "c", "description": "d", "duration": "45", "difficulty": "easy", "created_by": 7},
		{"title": "t", "category": "c", "description": "d", "duration": "45", "difficulty": "easy", "created_by": 7,
			"exercises": []map[string]any{{"sets": 3}}},
	}
	for _, body := range cases {
		resp := postJSON(t, app, "/workouts", body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, resp.StatusCode)
		}
	}
	if store.lastPlan != nil {
		t.Fatalf("expected no plan to be created")
	}
}

func TestGetPrebuiltPlans(t *testing.T) {
	store := newStubWorkoutStore()
	store.prebuiltPlans = []models.WorkoutPlan{
		{ID: 1, Title: "Starter", Category: "cardio", IsPrebuilt: true},
	}
	store.exercises[1] = []models.Exercise{{ID: 1, WorkoutID: 1, ExerciseName: "Jumping Jacks"}}
	app := newWorkoutApp(store)

	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var plans []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&plans); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
	if plans[0]["is_prebuilt"] != true {
		t.Fatalf("expected a prebuilt plan, got %v", plans[0])
	}
}

func TestGetPlansByUnknownCategoryReturnsEmptyList(t *testing.T) {
	store := newStubWorkoutStore()
	app := newWorkoutApp(store)

	req := httptest.NewRequest(http.MethodGet, "/api/workouts/category/nonexistent", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var plans []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&plans); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("expected an empty list, got %v", plans)
	}
}

func TestGetCategories(t *testing.T) {
	store := newStubWorkoutStore()
	store.categories = []string{"strength", "cardio"}
	app := newWorkoutApp(store)

	req := httptest.NewRequest(http.MethodGet, "/api/workouts/categories", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var categories []string
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", categories)
	}
}
