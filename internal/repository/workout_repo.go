package repository

import (
	"context"

	"github.com/ZainUlabideen460/fitness-app/internal/models"
)

const planColumns = `id, title, category, description, duration, difficulty, created_by, is_prebuilt, created_at`

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// CreatePlanWithExercises inserts the plan and all of its exercises inside a
// single transaction, so a failure partway through never leaves an orphaned
// plan. The plan and exercise IDs are filled in on success.
func (r *WorkoutRepository) CreatePlanWithExercises(
	ctx context.Context,
	plan *models.WorkoutPlan,
	exercises []models.Exercise,
) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	planQuery := `
		INSERT INTO workout_plans (title, category, description, duration, difficulty, created_by, is_prebuilt)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err = tx.QueryRow(ctx, planQuery,
		plan.Title,
		plan.Category,
		plan.Description,
		plan.Duration,
		plan.Difficulty,
		plan.CreatedBy,
		plan.IsPrebuilt,
	).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		return err
	}

	exerciseQuery := `
		INSERT INTO exercises (workout_id, exercise_name, sets, reps, rest_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range exercises {
		exercises[i].WorkoutID = plan.ID
		err = tx.QueryRow(ctx, exerciseQuery,
			exercises[i].WorkoutID,
			exercises[i].ExerciseName,
			exercises[i].Sets,
			exercises[i].Reps,
			exercises[i].RestTime,
		).Scan(&exercises[i].ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *WorkoutRepository) ListAll(ctx context.Context) ([]models.WorkoutPlan, error) {
	query := `SELECT ` + planColumns + ` FROM workout_plans`
	return r.listPlans(ctx, query)
}

func (r *WorkoutRepository) ListPrebuilt(ctx context.Context) ([]models.WorkoutPlan, error) {
	query := `SELECT ` + planColumns + ` FROM workout_plans WHERE is_prebuilt = TRUE`
	return r.listPlans(ctx, query)
}

func (r *WorkoutRepository) ListByCategory(ctx context.Context, category string) ([]models.WorkoutPlan, error) {
	query := `SELECT ` + planColumns + ` FROM workout_plans WHERE category = $1`
	return r.listPlans(ctx, query, category)
}

func (r *WorkoutRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM workout_plans`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// ListExercises returns a plan's exercises in insertion order.
func (r *WorkoutRepository) ListExercises(ctx context.Context, workoutID int64) ([]models.Exercise, error) {
	query := `
		SELECT id, workout_id, exercise_name, sets, reps, rest_time
		FROM exercises
		WHERE workout_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.WorkoutID,
			&exercise.ExerciseName,
			&exercise.Sets,
			&exercise.Reps,
			&exercise.RestTime,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *WorkoutRepository) listPlans(ctx context.Context, query string, args ...any) ([]models.WorkoutPlan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.WorkoutPlan, 0)
	for rows.Next() {
		var plan models.WorkoutPlan
		if err := rows.Scan(
			&plan.ID,
			&plan.Title,
			&plan.Category,
			&plan.Description,
			&plan.Duration,
			&plan.Difficulty,
			&plan.CreatedBy,
			&plan.IsPrebuilt,
			&plan.CreatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}
