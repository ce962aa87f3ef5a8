package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/views"
	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
	"github.com/AnasIqbal56/Banking-App/pkg/repositories"
	"github.com/AnasIqbal56/Banking-App/pkg/utils"
)

// AuthService issues the bearer credentials that the middleware later
// resolves into a caller id. The ledger operations never touch credentials.
type AuthService interface {
	Register(ctx context.Context, traceID string, req views.RegisterRequest) (views.UserResponse, error)
	Login(ctx context.Context, traceID string, req views.LoginRequest) (views.TokenResponse, error)
	CurrentUser(ctx context.Context, traceID string, userID uuid.UUID) (views.UserResponse, error)
}

type AuthServiceImpl struct {
	logger    *zap.Logger
	users     repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(logger *zap.Logger, users repositories.UserRepository, jwtSecret []byte, tokenTTL time.Duration) AuthService {
	return &AuthServiceImpl{
		logger:    logger,
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, traceID string, req views.RegisterRequest) (views.UserResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return views.UserResponse{}, pkg.HandleSQLError(traceID, s.logger, err)
	}
	if exists {
		return views.UserResponse{}, pkg.NewAppError(pkg.ErrInvalidInputCode, "email already registered", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return views.UserResponse{}, pkg.NewAppError(pkg.ErrServerCode, "failed to hash password", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	// The unique index on email catches the register/register race.
	if err = s.users.Create(ctx, user); err != nil {
		return views.UserResponse{}, pkg.HandleSQLError(traceID, s.logger, err)
	}

	s.logger.Info("user registered",
		zap.String(pkg.TraceId, traceID),
		zap.String("user_id", user.ID.String()))
	return views.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, traceID string, req views.LoginRequest) (views.TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Same response as a bad password; no account enumeration.
			return views.TokenResponse{}, pkg.NewAppError(pkg.ErrUnauthorizedCode, pkg.ErrInvalidCredentials.Error(), err)
		}
		return views.TokenResponse{}, pkg.HandleSQLError(traceID, s.logger, err)
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return views.TokenResponse{}, pkg.NewAppError(pkg.ErrUnauthorizedCode, pkg.ErrInvalidCredentials.Error(), pkg.ErrInvalidCredentials)
	}

	token, err := utils.IssueToken(s.jwtSecret, user.ID.String(), s.tokenTTL)
	if err != nil {
		return views.TokenResponse{}, pkg.NewAppError(pkg.ErrServerCode, "failed to issue token", err)
	}
	return views.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, traceID string, userID uuid.UUID) (views.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return views.UserResponse{}, pkg.NewAppError(pkg.ErrRecordNotFoundCode, "user not found", err)
		}
		return views.UserResponse{}, pkg.HandleSQLError(traceID, s.logger, err)
	}
	return views.NewUserResponse(user), nil
}
