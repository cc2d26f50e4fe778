package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ZainUlabideen460/fitness-app/internal/models"
)

type progressStore interface {
	Create(ctx context.Context, progress *models.Progress) error
	ListByUserID(ctx context.Context, userID int64) ([]models.Progress, error)
}

type ProgressHandler struct {
	progress progressStore
	now      func() time.Time
}

func NewProgressHandler(progress progressStore) *ProgressHandler {
	return &ProgressHandler{progress: progress, now: time.Now}
}

type trackProgressRequest struct {
	UserID            int64    `json:"user_id"`
	Weight            *float64 `json:"weight"`
	WorkoutsCompleted int      `json:"workouts_completed"`
	CaloriesBurned    int      `json:"calories_burned"`
	Notes             string   `json:"notes"`
}

type progressResponse struct {
	Date              string   `json:"date"`
	Weight            *float64 `json:"weight"`
	WorkoutsCompleted int      `json:"workouts_completed"`
	CaloriesBurned    int      `json:"calories_burned"`
	Notes             string   `json:"notes"`
}

// TrackProgress always inserts a new record dated with the server clock;
// the caller cannot supply a date.
func (h *ProgressHandler) TrackProgress(c *fiber.Ctx) error {
	var req trackProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.UserID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	entry := &models.Progress{
		UserID:            req.UserID,
		Date:              h.now().UTC().Truncate(24 * time.Hour),
		Weight:            req.Weight,
		WorkoutsCompleted: req.WorkoutsCompleted,
		CaloriesBurned:    req.CaloriesBurned,
		Notes:             req.Notes,
	}
	if err := h.progress.Create(c.Context(), entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to save progress"})
	}

	return c.JSON(fiber.Map{"message": "Progress saved"})
}

func (h *ProgressHandler) GetUserProgress(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	entries, err := h.progress.ListByUserID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch progress"})
	}

	responses := make([]progressResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, progressResponse{
			Date:              entry.Date.Format("2006-01-02"),
			Weight:            entry.Weight,
			WorkoutsCompleted: entry.WorkoutsCompleted,
			CaloriesBurned:    entry.CaloriesBurned,
			Notes:             entry.Notes,
		})
	}

	return c.JSON(responses)
}
