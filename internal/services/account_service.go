package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/views"
	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
	"github.com/AnasIqbal56/Banking-App/pkg/repositories"
	"github.com/AnasIqbal56/Banking-App/pkg/utils"
)

// Collisions on a 10-digit number are vanishingly rare; the cap only guards
// against a broken random source. The unique index is the hard backstop.
const maxAccountNumberAttempts = 10

type AccountService interface {
	CreateAccount(ctx context.Context, traceID string, userID uuid.UUID, req views.AccountRequest) (views.AccountResponse, error)
	ListAccounts(ctx context.Context, traceID string, userID uuid.UUID) ([]views.AccountResponse, error)
	GetAccount(ctx context.Context, traceID string, userID, accountID uuid.UUID) (views.AccountResponse, error)
}

type AccountServiceImpl struct {
	logger   *zap.Logger
	accounts repositories.AccountRepository
}

func NewAccountService(logger *zap.Logger, accounts repositories.AccountRepository) AccountService {
	return &AccountServiceImpl{logger: logger, accounts: accounts}
}

func (s *AccountServiceImpl) CreateAccount(ctx context.Context, traceID string, userID uuid.UUID, req views.AccountRequest) (views.AccountResponse, error) {
	accountNumber, err := s.uniqueAccountNumber(ctx, traceID)
	if err != nil {
		return views.AccountResponse{}, err
	}

	account := models.Account{
		ID:            uuid.New(),
		UserID:        userID,
		AccountNumber: accountNumber,
		AccountName:   req.AccountName,
		Balance:       decimal.Zero,
		CreatedAt:     time.Now().UTC(),
	}
	if err = s.accounts.Create(ctx, account); err != nil {
		return views.AccountResponse{}, pkg.HandleSQLError(traceID, s.logger, err)
	}

	s.logger.Info("account created",
		zap.String(pkg.TraceId, traceID),
		zap.String("account_id", account.ID.String()),
		zap.String("account_number", account.AccountNumber))
	return views.NewAccountResponse(account), nil
}

// uniqueAccountNumber draws random 10-digit numbers until one is free.
func (s *AccountServiceImpl) uniqueAccountNumber(ctx context.Context, traceID string) (string, error) {
	for attempt := 0; attempt < maxAccountNumberAttempts; attempt++ {
		accountNumber, err := utils.RandomAccountNumber()
		if err != nil {
			return "", pkg.NewAppError(pkg.ErrServerCode, "failed to generate account number", err)
		}
		exists, err := s.accounts.ExistsByNumber(ctx, accountNumber)
		if err != nil {
			return "", pkg.HandleSQLError(traceID, s.logger, err)
		}
		if !exists {
			return accountNumber, nil
		}
	}
	return "", pkg.NewAppError(pkg.ErrServerCode, "failed to allocate a unique account number", nil)
}

func (s *AccountServiceImpl) ListAccounts(ctx context.Context, traceID string, userID uuid.UUID) ([]views.AccountResponse, error) {
	accounts, err := s.accounts.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, pkg.HandleSQLError(traceID, s.logger, err)
	}
	responses := make([]views.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, views.NewAccountResponse(account))
	}
	return responses, nil
}

func (s *AccountServiceImpl) GetAccount(ctx context.Context, traceID string, userID, accountID uuid.UUID) (views.AccountResponse, error) {
	account, err := s.accounts.FindByIDForUser(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return views.AccountResponse{}, pkg.NewAppError(pkg.ErrRecordNotFoundCode, "account not found", err)
		}
		return views.AccountResponse{}, pkg.HandleSQLError(traceID, s.logger, err)
	}
	return views.NewAccountResponse(account), nil
}
