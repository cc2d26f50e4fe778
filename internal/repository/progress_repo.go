package repository

import (
	"context"

	"github.com/ZainUlabideen460/fitness-app/internal/models"
)

type ProgressRepository struct {
	db DBTX
}

func NewProgressRepository(db DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create always inserts a new row; two submissions on the same date produce
// two records.
func (r *ProgressRepository) Create(ctx context.Context, progress *models.Progress) error {
	query := `
		INSERT INTO progress (user_id, date, weight, workouts_completed, calories_burned, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		progress.UserID,
		progress.Date,
		progress.Weight,
		progress.WorkoutsCompleted,
		progress.CaloriesBurned,
		progress.Notes,
	).Scan(&progress.ID, &progress.CreatedAt)
}

func (r *ProgressRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Progress, error) {
	query := `
		SELECT id, user_id, date, weight, workouts_completed, calories_burned, notes, created_at
		FROM progress
		WHERE user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.Progress, 0)
	for rows.Next() {
		var entry models.Progress
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Date,
			&entry.Weight,
			&entry.WorkoutsCompleted,
			&entry.CaloriesBurned,
			&entry.Notes,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
