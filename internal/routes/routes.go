package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ZainUlabideen460/fitness-app/internal/handlers"
	"github.com/ZainUlabideen460/fitness-app/internal/repository"
)

func RegisterRoutes(app *fiber.App, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	workoutLogRepo := repository.NewWorkoutLogRepository(db)

	userHandler := handlers.NewUserHandler(userRepo)
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo)
	progressHandler := handlers.NewProgressHandler(progressRepo)
	workoutLogHandler := handlers.NewWorkoutLogHandler(workoutLogRepo)

	users := app.Group("/users")
	users.Post("/register", userHandler.Register)
	users.Post("/login", userHandler.Login)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)
	users.Put("/:id/fitness", userHandler.SetFitnessProfile)
	users.Get("/:id/fitness", userHandler.GetFitnessProfile)

	app.Get("/workouts", workoutHandler.GetPrebuiltPlans)
	app.Post("/workouts", workoutHandler.CreateCustomWorkout)

	app.Post("/progress", progressHandler.TrackProgress)

	app.Post("/workout-log", workoutLogHandler.LogWorkoutProgress)
	app.Get("/workout-log/:user_id", workoutLogHandler.GetWorkoutLogs)

	// Paths from the first API revision, kept so older clients keep working.
	app.Post("/register", userHandler.Register)

	api := app.Group("/api")
	api.Post("/users/login", userHandler.Login)
	api.Get("/workouts", workoutHandler.GetWorkoutPlans)
	api.Post("/workouts", workoutHandler.CreateCustomWorkout)
	api.Get("/workouts/prebuilt", workoutHandler.GetPrebuiltPlans)
	api.Get("/workouts/categories", workoutHandler.GetCategories)
	api.Get("/workouts/category/:category", workoutHandler.GetPlansByCategory)
	api.Post("/progress", progressHandler.TrackProgress)
	api.Get("/progress/:user_id", progressHandler.GetUserProgress)
}
