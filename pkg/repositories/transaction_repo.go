package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AnasIqbal56/Banking-App/pkg/database"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
)

// TransactionRepository persists immutable ledger transaction records.
// There is deliberately no update or delete.
type TransactionRepository interface {
	// Create inserts a transaction record inside tx, alongside the balance
	// mutation it documents.
	Create(ctx context.Context, tx pgx.Tx, transaction models.Transaction) error
	// FindByAccount returns the newest records first, capped at limit.
	FindByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Transaction, error)
}

type TransactionRepositoryImpl struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

func (t TransactionRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, transaction models.Transaction) error {
	_, err := tx.Exec(ctx, `INSERT INTO transactions
		(id, account_id, amount, transaction_type, description, balance_after, recipient_account, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		transaction.ID,
		transaction.AccountID,
		transaction.Amount,
		transaction.Type,
		transaction.Description,
		transaction.BalanceAfter,
		transaction.RecipientAccount,
		transaction.CreatedAt,
	)
	return err
}

func (t TransactionRepositoryImpl) FindByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Transaction, error) {
	rows, err := t.db.Query(ctx, `SELECT id, account_id, amount, transaction_type, description, balance_after, recipient_account, created_at
		FROM transactions WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2`,
		accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var txn models.Transaction
		if err = rows.Scan(
			&txn.ID,
			&txn.AccountID,
			&txn.Amount,
			&txn.Type,
			&txn.Description,
			&txn.BalanceAfter,
			&txn.RecipientAccount,
			&txn.CreatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}
