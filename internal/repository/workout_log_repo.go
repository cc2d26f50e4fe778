package repository

import (
	"context"

	"github.com/ZainUlabideen460/fitness-app/internal/models"
)

type WorkoutLogRepository struct {
	db DBTX
}

func NewWorkoutLogRepository(db DBTX) *WorkoutLogRepository {
	return &WorkoutLogRepository{db: db}
}

func (r *WorkoutLogRepository) Create(ctx context.Context, entry *models.WorkoutLog) error {
	query := `
		INSERT INTO workout_logs (user_id, workout_id, date, duration, calories_burned, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		entry.UserID,
		entry.WorkoutID,
		entry.Date,
		entry.Duration,
		entry.CaloriesBurned,
		entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *WorkoutLogRepository) ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutLog, error) {
	query := `
		SELECT id, user_id, workout_id, date, duration, calories_burned, notes, created_at
		FROM workout_logs
		WHERE user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.WorkoutLog, 0)
	for rows.Next() {
		var entry models.WorkoutLog
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.WorkoutID,
			&entry.Date,
			&entry.Duration,
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
