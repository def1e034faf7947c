package repository

import (
	"context"
	"database/sql"
	"errors"

	"notesapp/internal/user/model"
	"notesapp/pkg/apperror"
	"notesapp/pkg/logger"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// uniqueViolation is the Postgres SQLSTATE for a UNIQUE constraint failure.
const uniqueViolation = "23505"

const userColumns = `id, full_name, email, password_hash, created_at`

type UserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindByEmail returns nil, nil when no user has that email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get user by email: %v", err)
		return nil, apperror.Internal(err)
	}
	return &u, nil
}

// FindByID returns nil, nil when the id is unknown or not a valid UUID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get user %s: %v", id, err)
		return nil, apperror.Internal(err)
	}
	return &u, nil
}

// Create inserts a new user. The email lookup gives the common case a clean
// DuplicateEmail; the UNIQUE constraint catches concurrent signups.
func (r *UserRepository) Create(ctx context.Context, fullName, email, passwordHash string) (*model.User, error) {
	existing, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.New(apperror.KindDuplicateEmail, "User already exists")
	}

	u := model.User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
	}
	err = r.DB.QueryRowxContext(ctx,
		`INSERT INTO users (id, full_name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at`,
		u.ID, u.FullName, u.Email, u.PasswordHash,
	).Scan(&u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperror.New(apperror.KindDuplicateEmail, "User already exists")
		}
		logger.Sugar.Errorf("Failed to create user: %v", err)
		return nil, apperror.Internal(err)
	}
	return &u, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	err := r.DB.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		logger.Sugar.Errorf("Failed to list users: %v", err)
		return nil, apperror.Internal(err)
	}
	return users, nil
}
