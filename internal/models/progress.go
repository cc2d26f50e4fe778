package models

import "time"

type Progress struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	Date              time.Time `json:"date"`
	Weight            *float64  `json:"weight"`
	WorkoutsCompleted int       `json:"workouts_completed"`
	CaloriesBurned    int       `json:"calories_burned"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
}

// WorkoutLog records a single completed workout, as opposed to Progress
// which tracks day-level body stats.
type WorkoutLog struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	WorkoutID      *int64    `json:"workout_id"`
	Date           time.Time `json:"date"`
	Duration       *int      `json:"duration"`
	CaloriesBurned int       `json:"calories_burned"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}
