package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/events"
	"github.com/AnasIqbal56/Banking-App/internal/views"
	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
	"github.com/AnasIqbal56/Banking-App/pkg/repositories"
)

// BillService owns the bill lifecycle:
//
//	pending --(due date passed, observed on listing)--> overdue --(payment)--> paid
//	pending --(payment)--> paid
//
// paid is terminal; deletion is allowed from any state. The overdue flip is
// lazy: it is persisted as a side effect of ListBills, never by a background
// process.
type BillService interface {
	CreateBill(ctx context.Context, traceID string, userID uuid.UUID, req views.BillRequest) (views.BillResponse, error)
	ListBills(ctx context.Context, traceID string, userID uuid.UUID) ([]views.BillResponse, error)
	PayBill(ctx context.Context, traceID string, userID uuid.UUID, req views.BillPaymentRequest) (views.BillResponse, error)
	DeleteBill(ctx context.Context, traceID string, userID, billID uuid.UUID) error
}

type BillServiceImpl struct {
	logger       *zap.Logger
	tx           TxRunner
	bills        repositories.BillRepository
	accounts     repositories.AccountRepository
	transactions repositories.TransactionRepository
	publisher    events.Publisher
}

func NewBillService(logger *zap.Logger, tx TxRunner, bills repositories.BillRepository, accounts repositories.AccountRepository, transactions repositories.TransactionRepository, publisher events.Publisher) BillService {
	return &BillServiceImpl{
		logger:       logger,
		tx:           tx,
		bills:        bills,
		accounts:     accounts,
		transactions: transactions,
		publisher:    publisher,
	}
}

func (s *BillServiceImpl) CreateBill(ctx context.Context, traceID string, userID uuid.UUID, req views.BillRequest) (views.BillResponse, error) {
	billType := pkg.BillType(req.BillType)
	if !billType.Valid() {
		return views.BillResponse{}, pkg.NewAppError(pkg.ErrInvalidInputCode, "unsupported bill type", nil)
	}
	if !req.Amount.IsPositive() {
		return views.BillResponse{}, pkg.NewAppError(pkg.ErrInvalidInputCode, "amount must be positive", nil)
	}

	bill := models.Bill{
		ID:            uuid.New(),
		UserID:        userID,
		BillType:      billType,
		ProviderName:  req.ProviderName,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		AccountNumber: req.AccountNumber,
		Status:        pkg.BillStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.bills.Create(ctx, bill); err != nil {
		return views.BillResponse{}, pkg.HandleSQLError(traceID, s.logger, err)
	}
	return views.NewBillResponse(bill), nil
}

func (s *BillServiceImpl) ListBills(ctx context.Context, traceID string, userID uuid.UUID) ([]views.BillResponse, error) {
	// Lazy status materialization: pending bills past their due date are
	// flipped to overdue before the listing is read back.
	flipped, err := s.bills.MarkOverdueByUser(ctx, userID, time.Now().UTC())
	if err != nil {
		return nil, pkg.HandleSQLError(traceID, s.logger, err)
	}
	if flipped > 0 {
		s.logger.Info("bills marked overdue",
			zap.String(pkg.TraceId, traceID),
			zap.Int64("count", flipped))
	}

	bills, err := s.bills.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, pkg.HandleSQLError(traceID, s.logger, err)
	}
	responses := make([]views.BillResponse, 0, len(bills))
	for _, bill := range bills {
		responses = append(responses, views.NewBillResponse(bill))
	}
	return responses, nil
}

func (s *BillServiceImpl) PayBill(ctx context.Context, traceID string, userID uuid.UUID, req views.BillPaymentRequest) (views.BillResponse, error) {
	var bill models.Bill
	var record models.Transaction

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		bill, err = s.bills.LockByIDForUser(ctx, tx, req.BillID, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return pkg.NewAppError(pkg.ErrRecordNotFoundCode, "bill not found", err)
			}
			return pkg.HandleSQLError(traceID, s.logger, err)
		}
		if bill.Status == pkg.BillStatusPaid {
			return pkg.NewAppError(pkg.ErrBusinessRuleCode, pkg.ErrBillAlreadyPaid.Error(), pkg.ErrBillAlreadyPaid)
		}

		account, err := s.accounts.LockByIDForUser(ctx, tx, req.FromAccountID, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return pkg.NewAppError(pkg.ErrRecordNotFoundCode, "account not found", err)
			}
			return pkg.HandleSQLError(traceID, s.logger, err)
		}
		if account.Balance.LessThan(bill.Amount) {
			return pkg.NewAppError(pkg.ErrInsufficientFundsCode, "insufficient funds", pkg.ErrInsufficientFunds)
		}

		now := time.Now().UTC()
		newBalance := account.Balance.Sub(bill.Amount)
		if err = s.accounts.UpdateBalance(ctx, tx, account.ID, newBalance); err != nil {
			return pkg.HandleSQLError(traceID, s.logger, err)
		}

		record = models.Transaction{
			ID:               uuid.New(),
			AccountID:        account.ID,
			Amount:           bill.Amount,
			Type:             pkg.TransactionBillPayment,
			Description:      fmt.Sprintf("Bill payment - %s (%s)", bill.ProviderName, bill.BillType),
			BalanceAfter:     newBalance,
			RecipientAccount: &bill.AccountNumber,
			CreatedAt:        now,
		}
		if err = s.transactions.Create(ctx, tx, record); err != nil {
			return pkg.HandleSQLError(traceID, s.logger, err)
		}

		if err = s.bills.MarkPaid(ctx, tx, bill.ID, now); err != nil {
			return pkg.HandleSQLError(traceID, s.logger, err)
		}
		bill.Status = pkg.BillStatusPaid
		bill.PaidAt = &now
		return nil
	})
	if err != nil {
		return views.BillResponse{}, err
	}

	if err = s.publisher.PublishTransaction(newTransactionCompleted(record, userID)); err != nil {
		s.logger.Error("failed to publish transaction event",
			zap.String(pkg.TraceId, traceID),
			zap.String("transaction_id", record.ID.String()),
			zap.Error(err))
	}
	return views.NewBillResponse(bill), nil
}

func (s *BillServiceImpl) DeleteBill(ctx context.Context, traceID string, userID, billID uuid.UUID) error {
	deleted, err := s.bills.DeleteByIDForUser(ctx, billID, userID)
	if err != nil {
		return pkg.HandleSQLError(traceID, s.logger, err)
	}
	if deleted == 0 {
		return pkg.NewAppError(pkg.ErrRecordNotFoundCode, "bill not found", nil)
	}
	return nil
}
