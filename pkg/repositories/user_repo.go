package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnasIqbal56/Banking-App/pkg/database"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID uuid.UUID) (models.User, error)
}

type UserRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (u UserRepositoryImpl) Create(ctx context.Context, user models.User) error {
	_, err := u.db.Exec(ctx, `INSERT INTO users (id, email, full_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.FullName, user.PasswordHash, user.CreatedAt)
	return err
}

func (u UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := u.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (u UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := u.db.QueryRow(ctx, `SELECT id, email, full_name, password_hash, created_at
		FROM users WHERE email = $1`, email).Scan(
		&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.CreatedAt)
	return user, err
}

func (u UserRepositoryImpl) FindByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	var user models.User
	err := u.db.QueryRow(ctx, `SELECT id, email, full_name, password_hash, created_at
		FROM users WHERE id = $1`, userID).Scan(
		&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.CreatedAt)
	return user, err
}
