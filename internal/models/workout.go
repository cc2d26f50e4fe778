package models

import "time"

type WorkoutPlan struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Difficulty  string    `json:"difficulty"`
	CreatedBy   int64     `json:"created_by"`
	IsPrebuilt  bool      `json:"is_prebuilt"`
	CreatedAt   time.Time `json:"created_at"`
}

type Exercise struct {
	ID           int64  `json:"id"`
	WorkoutID    int64  `json:"workout_id"`
	ExerciseName string `json:"exercise_name"`
	Sets         *int   `json:"sets"`
	Reps         *int   `json:"reps"`
	RestTime     *int   `json:"rest_time"`
}
