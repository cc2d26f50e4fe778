package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ZainUlabideen460/fitness-app/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

const userColumns = `id, username, email, password_hash, name, age, gender, weight, height, profile_picture, created_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

type UpdateUserInput struct {
	Username       *string
	Email          *string
	Name           *string
	Age            *int
	Gender         *string
	Weight         *float64
	Height         *float64
	ProfilePicture *string
}

type FitnessProfileInput struct {
	Age    *int
	Gender *string
	Weight *float64
	Height *float64
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, name, age, gender, weight, height, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Age,
		user.Gender,
		user.Weight,
		user.Height,
		user.ProfilePicture,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// UpdatePartial overwrites only the fields set in the input; nil fields keep
// their stored values.
func (r *UserRepository) UpdatePartial(ctx context.Context, id int64, input UpdateUserInput) (*models.User, error) {
	query := `
		UPDATE users
		SET username = COALESCE($1, username),
			email = COALESCE($2, email),
			name = COALESCE($3, name),
			age = COALESCE($4, age),
			gender = COALESCE($5, gender),
			weight = COALESCE($6, weight),
			height = COALESCE($7, height),
			profile_picture = COALESCE($8, profile_picture)
		WHERE id = $9
		RETURNING ` + userColumns + `
	`
	return r.scanUser(r.db.QueryRow(ctx, query,
		input.Username,
		input.Email,
		input.Name,
		input.Age,
		input.Gender,
		input.Weight,
		input.Height,
		input.ProfilePicture,
		id,
	))
}

func (r *UserRepository) UpdateFitnessProfile(ctx context.Context, id int64, input FitnessProfileInput) (*models.User, error) {
	query := `
		UPDATE users
		SET age = COALESCE($1, age),
			gender = COALESCE($2, gender),
			weight = COALESCE($3, weight),
			height = COALESCE($4, height)
		WHERE id = $5
		RETURNING ` + userColumns + `
	`
	return r.scanUser(r.db.QueryRow(ctx, query,
		input.Age,
		input.Gender,
		input.Weight,
		input.Height,
		id,
	))
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Age,
		&user.Gender,
		&user.Weight,
		&user.Height,
		&user.ProfilePicture,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
