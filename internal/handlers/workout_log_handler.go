package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ZainUlabideen460/fitness-app/internal/models"
)

type workoutLogStore interface {
	Create(ctx context.Context, entry *models.WorkoutLog) error
	ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutLog, error)
}

type WorkoutLogHandler struct {
	logs workoutLogStore
	now  func() time.Time
}

func NewWorkoutLogHandler(logs workoutLogStore) *WorkoutLogHandler {
	return &WorkoutLogHandler{logs: logs, now: time.Now}
}

type logWorkoutRequest struct {
	UserID         int64  `json:"user_id"`
	WorkoutID      *int64 `json:"workout_id"`
	Duration       *int   `json:"duration"`
	CaloriesBurned int    `json:"calories_burned"`
	Notes          string `json:"notes"`
}

type workoutLogResponse struct {
	Date           string `json:"date"`
	WorkoutID      *int64 `json:"workout_id"`
	Duration       *int   `json:"duration"`
	CaloriesBurned int    `json:"calories_burned"`
	Notes          string `json:"notes"`
}

func (h *WorkoutLogHandler) LogWorkoutProgress(c *fiber.Ctx) error {
	var req logWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.UserID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	entry := &models.WorkoutLog{
		UserID:         req.UserID,
		WorkoutID:      req.WorkoutID,
		Date:           h.now().UTC().Truncate(24 * time.Hour),
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		Notes:          req.Notes,
	}
	if err := h.logs.Create(c.Context(), entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to log workout"})
	}

	return c.JSON(fiber.Map{"message": "Workout logged"})
}

func (h *WorkoutLogHandler) GetWorkoutLogs(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	entries, err := h.logs.ListByUserID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch workout logs"})
	}

	responses := make([]workoutLogResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, workoutLogResponse{
			Date:           entry.Date.Format("2006-01-02"),
			WorkoutID:      entry.WorkoutID,
			Duration:       entry.Duration,
			CaloriesBurned: entry.CaloriesBurned,
			Notes:          entry.Notes,
		})
	}

	return c.JSON(responses)
}
