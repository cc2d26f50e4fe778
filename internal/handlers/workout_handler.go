package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ZainUlabideen460/fitness-app/internal/models"
)

type workoutStore interface {
	CreatePlanWithExercises(ctx context.Context, plan *models.WorkoutPlan, exercises []models.Exercise) error
	ListAll(ctx context.Context) ([]models.WorkoutPlan, error)
	ListPrebuilt(ctx context.Context) ([]models.WorkoutPlan, error)
	ListByCategory(ctx context.Context, category string) ([]models.WorkoutPlan, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListExercises(ctx context.Context, workoutID int64) ([]models.Exercise, error)
}

type WorkoutHandler struct {
	workouts workoutStore
}

func NewWorkoutHandler(workouts workoutStore) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

type exerciseSpec struct {
	ExerciseName string `json:"exercise_name"`
	Sets         *int   `json:"sets"`
	Reps         *int   `json:"reps"`
	RestTime     *int   `json:"rest_time"`
}

type createWorkoutRequest struct {
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Duration    string         `json:"duration"`
	Difficulty  string         `json:"difficulty"`
	CreatedBy   int64          `json:"created_by"`
	Exercises   []exerciseSpec `json:"exercises"`
}

type exerciseResponse struct {
	ExerciseName string `json:"exercise_name"`
	Sets         *int   `json:"sets"`
	Reps         *int   `json:"reps"`
	RestTime     *int   `json:"rest_time"`
}

// workoutResponse is the shared projection used by every workout read
// endpoint.
type workoutResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Duration    string             `json:"duration"`
	Difficulty  string             `json:"difficulty"`
	CreatedBy   int64              `json:"created_by"`
	IsPrebuilt  bool               `json:"is_prebuilt"`
	Exercises   []exerciseResponse `json:"exercises"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (h *WorkoutHandler) CreateCustomWorkout(c *fiber.Ctx) error {
	var req createWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	required := []struct {
		field string
		value string
	}{
		{"title", req.Title},
		{"category", req.Category},
		{"description", req.Description},
		{"duration", req.Duration},
		{"difficulty", req.Difficulty},
	}
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": item.field + " is required"})
		}
	}
	if req.CreatedBy <= 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "created_by is required"})
	}
	if req.Exercises == nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "exercises is required"})
	}

	exercises := make([]models.Exercise, 0, len(req.Exercises))
	for _, spec := range req.Exercises {
		if strings.TrimSpace(spec.ExerciseName) == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "exercise_name is required for every exercise"})
		}
		exercises = append(exercises, models.Exercise{
			ExerciseName: spec.ExerciseName,
			Sets:         spec.Sets,
			Reps:         spec.Reps,
			RestTime:     spec.RestTime,
		})
	}

	// Custom plans are never prebuilt.
	plan := &models.WorkoutPlan{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Duration:    req.Duration,
		Difficulty:  req.Difficulty,
		CreatedBy:   req.CreatedBy,
		IsPrebuilt:  false,
	}
	if err := h.workouts.CreatePlanWithExercises(c.Context(), plan, exercises); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create workout plan"})
	}

	return c.JSON(fiber.Map{
		"message": "Workout plan created",
		"plan_id": plan.ID,
	})
}

func (h *WorkoutHandler) GetWorkoutPlans(c *fiber.Ctx) error {
	plans, err := h.workouts.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch workout plans"})
	}
	return h.respondPlans(c, plans)
}

func (h *WorkoutHandler) GetPrebuiltPlans(c *fiber.Ctx) error {
	plans, err := h.workouts.ListPrebuilt(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch workout plans"})
	}
	return h.respondPlans(c, plans)
}

func (h *WorkoutHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.workouts.ListCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(categories)
}

// GetPlansByCategory is an exact-match filter; an unknown category yields an
// empty list, not an error.
func (h *WorkoutHandler) GetPlansByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	plans, err := h.workouts.ListByCategory(c.Context(), category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch workout plans"})
	}
	return h.respondPlans(c, plans)
}

func (h *WorkoutHandler) respondPlans(c *fiber.Ctx, plans []models.WorkoutPlan) error {
	responses := make([]workoutResponse, 0, len(plans))
	for _, plan := range plans {
		exercises, err := h.workouts.ListExercises(c.Context(), plan.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Failed to fetch exercises"})
		}
		responses = append(responses, serializeWorkout(plan, exercises))
	}
	return c.JSON(responses)
}

func serializeWorkout(plan models.WorkoutPlan, exercises []models.Exercise) workoutResponse {
	items := make([]exerciseResponse, 0, len(exercises))
	for _, exercise := range exercises {
		items = append(items, exerciseResponse{
			ExerciseName: exercise.ExerciseName,
			Sets:         exercise.Sets,
			Reps:         exercise.Reps,
			RestTime:     exercise.RestTime,
		})
	}

	return workoutResponse{
		ID:          plan.ID,
		Title:       plan.Title,
		Category:    plan.Category,
		Description: plan.Description,
		Duration:    plan.Duration,
		Difficulty:  plan.Difficulty,
		CreatedBy:   plan.CreatedBy,
		IsPrebuilt:  plan.IsPrebuilt,
		Exercises:   items,
		CreatedAt:   plan.CreatedAt,
	}
}
