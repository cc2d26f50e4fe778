package models

import "time"

type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Name           *string   `json:"name"`
	Age            *int      `json:"age"`
	Gender         *string   `json:"gender"`
	Weight         *float64  `json:"weight"`
	Height         *float64  `json:"height"`
	ProfilePicture *string   `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

// FitnessProfile is the subset of User fields describing physical stats.
type FitnessProfile struct {
	Age    *int     `json:"age"`
	Gender *string  `json:"gender"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
}
