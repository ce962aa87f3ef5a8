package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/events"
	"github.com/AnasIqbal56/Banking-App/internal/views"
	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
	"github.com/AnasIqbal56/Banking-App/pkg/repositories"
	"github.com/AnasIqbal56/Banking-App/pkg/utils"
)

const defaultTransactionLimit = 50

// LedgerService owns every balance mutation: deposits, withdrawals and
// transfers. Each mutation runs in one store transaction with the affected
// account rows locked, and appends exactly one immutable transaction record
// per affected account.
type LedgerService interface {
	CreateTransaction(ctx context.Context, traceID string, userID, accountID uuid.UUID, req views.TransactionRequest) (views.TransactionResponse, error)
	ListTransactions(ctx context.Context, traceID string, userID, accountID uuid.UUID, limit int) ([]views.TransactionResponse, error)
}

type LedgerServiceImpl struct {
	logger       *zap.Logger
	tx           TxRunner
	accounts     repositories.AccountRepository
	transactions repositories.TransactionRepository
	publisher    events.Publisher
}

func NewLedgerService(logger *zap.Logger, tx TxRunner, accounts repositories.AccountRepository, transactions repositories.TransactionRepository, publisher events.Publisher) LedgerService {
	return &LedgerServiceImpl{
		logger:       logger,
		tx:           tx,
		accounts:     accounts,
		transactions: transactions,
		publisher:    publisher,
	}
}

func (s *LedgerServiceImpl) CreateTransaction(ctx context.Context, traceID string, userID, accountID uuid.UUID, req views.TransactionRequest) (views.TransactionResponse, error) {
	if !req.Amount.IsPositive() {
		return views.TransactionResponse{}, pkg.NewAppError(pkg.ErrInvalidInputCode, "amount must be positive", nil)
	}
	kind := pkg.TransactionType(req.TransactionType)
	if !kind.Valid() {
		return views.TransactionResponse{}, pkg.NewAppError(pkg.ErrInvalidInputCode, "unsupported transaction type", nil)
	}

	var record models.Transaction
	var completed []events.TransactionCompleted

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		account, err := s.accounts.LockByIDForUser(ctx, tx, accountID, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return pkg.NewAppError(pkg.ErrRecordNotFoundCode, "account not found", err)
			}
			return pkg.HandleSQLError(traceID, s.logger, err)
		}

		now := time.Now().UTC()
		var newBalance decimal.Decimal
		var recipientNumber *string

		switch kind {
		case pkg.TransactionDeposit:
			newBalance = account.Balance.Add(req.Amount)
		case pkg.TransactionWithdrawal:
			if account.Balance.LessThan(req.Amount) {
				return pkg.NewAppError(pkg.ErrInsufficientFundsCode, "insufficient funds", pkg.ErrInsufficientFunds)
			}
			newBalance = account.Balance.Sub(req.Amount)
		case pkg.TransactionTransfer:
			recipientRecord, recipientUserID, err := s.applyTransfer(ctx, tx, traceID, account, req.Amount, req.RecipientAccount, now)
			if err != nil {
				return err
			}
			completed = append(completed, newTransactionCompleted(recipientRecord, recipientUserID))
			newBalance = account.Balance.Sub(req.Amount)
			recipientNumber = &req.RecipientAccount
		}

		if err = s.accounts.UpdateBalance(ctx, tx, account.ID, newBalance); err != nil {
			return pkg.HandleSQLError(traceID, s.logger, err)
		}

		record = models.Transaction{
			ID:               uuid.New(),
			AccountID:        account.ID,
			Amount:           req.Amount,
			Type:             kind,
			Description:      transactionDescription(req.Description, kind),
			BalanceAfter:     newBalance,
			RecipientAccount: recipientNumber,
			CreatedAt:        now,
		}
		if err = s.transactions.Create(ctx, tx, record); err != nil {
			return pkg.HandleSQLError(traceID, s.logger, err)
		}
		completed = append(completed, newTransactionCompleted(record, userID))
		return nil
	})
	if err != nil {
		return views.TransactionResponse{}, err
	}

	s.publish(traceID, completed)
	// The response is built from the values just written, not re-read.
	return views.NewTransactionResponse(record), nil
}

// applyTransfer credits the recipient side of a transfer: it locks the
// recipient row, writes the incremented balance and inserts the
// recipient-side deposit record. The caller debits the source inside the
// same transaction, so a failure on either side rolls back both.
func (s *LedgerServiceImpl) applyTransfer(ctx context.Context, tx pgx.Tx, traceID string, account models.Account, amount decimal.Decimal, recipientNumber string, now time.Time) (models.Transaction, uuid.UUID, error) {
	if utils.IsEmpty(recipientNumber) {
		return models.Transaction{}, uuid.Nil, pkg.NewAppError(pkg.ErrInvalidInputCode, pkg.ErrMissingRecipient.Error(), pkg.ErrMissingRecipient)
	}
	if account.Balance.LessThan(amount) {
		return models.Transaction{}, uuid.Nil, pkg.NewAppError(pkg.ErrInsufficientFundsCode, "insufficient funds", pkg.ErrInsufficientFunds)
	}

	recipient, err := s.accounts.LockByNumber(ctx, tx, recipientNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Transaction{}, uuid.Nil, pkg.NewAppError(pkg.ErrRecordNotFoundCode, "recipient account not found", err)
		}
		return models.Transaction{}, uuid.Nil, pkg.HandleSQLError(traceID, s.logger, err)
	}
	if recipient.AccountNumber == account.AccountNumber {
		return models.Transaction{}, uuid.Nil, pkg.NewAppError(pkg.ErrBusinessRuleCode, pkg.ErrSameAccount.Error(), pkg.ErrSameAccount)
	}

	// The recipient row is locked, so balance + amount is exactly the value
	// persisted below.
	recipientBalance := recipient.Balance.Add(amount)
	if err = s.accounts.UpdateBalance(ctx, tx, recipient.ID, recipientBalance); err != nil {
		return models.Transaction{}, uuid.Nil, pkg.HandleSQLError(traceID, s.logger, err)
	}

	record := models.Transaction{
		ID:           uuid.New(),
		AccountID:    recipient.ID,
		Amount:       amount,
		Type:         pkg.TransactionDeposit,
		Description:  "Transfer from " + account.AccountNumber,
		BalanceAfter: recipientBalance,
		CreatedAt:    now,
	}
	if err = s.transactions.Create(ctx, tx, record); err != nil {
		return models.Transaction{}, uuid.Nil, pkg.HandleSQLError(traceID, s.logger, err)
	}
	return record, recipient.UserID, nil
}

func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, traceID string, userID, accountID uuid.UUID, limit int) ([]views.TransactionResponse, error) {
	// Ownership-filtered lookup: another user's account is simply not found.
	if _, err := s.accounts.FindByIDForUser(ctx, accountID, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pkg.NewAppError(pkg.ErrRecordNotFoundCode, "account not found", err)
		}
		return nil, pkg.HandleSQLError(traceID, s.logger, err)
	}
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	records, err := s.transactions.FindByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, pkg.HandleSQLError(traceID, s.logger, err)
	}
	responses := make([]views.TransactionResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, views.NewTransactionResponse(record))
	}
	return responses, nil
}

func (s *LedgerServiceImpl) publish(traceID string, completed []events.TransactionCompleted) {
	for _, event := range completed {
		if err := s.publisher.PublishTransaction(event); err != nil {
			s.logger.Error("failed to publish transaction event",
				zap.String(pkg.TraceId, traceID),
				zap.String("transaction_id", event.TransactionID.String()),
				zap.Error(err))
		}
	}
}

func newTransactionCompleted(record models.Transaction, userID uuid.UUID) events.TransactionCompleted {
	return events.TransactionCompleted{
		TransactionID:   record.ID,
		AccountID:       record.AccountID,
		UserID:          userID,
		TransactionType: record.Type,
		Amount:          record.Amount,
		BalanceAfter:    record.BalanceAfter,
		OccurredAt:      record.CreatedAt,
	}
}

func transactionDescription(description string, kind pkg.TransactionType) string {
	if !utils.IsEmpty(description) {
		return description
	}
	switch kind {
	case pkg.TransactionDeposit:
		return "Deposit"
	case pkg.TransactionWithdrawal:
		return "Withdrawal"
	case pkg.TransactionTransfer:
		return "Transfer"
	case pkg.TransactionBillPayment:
		return "Bill payment"
	}
	return string(kind)
}
