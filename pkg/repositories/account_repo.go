package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/AnasIqbal56/Banking-App/pkg/database"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
)

// AccountRepository defines the interface for account persistence.
// Lookups are ownership-scoped: an account belonging to another user behaves
// exactly like a missing row.
type AccountRepository interface {
	// Create inserts a new account.
	Create(ctx context.Context, account models.Account) error
	FindByIDForUser(ctx context.Context, accountID, userID uuid.UUID) (models.Account, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
	ExistsByNumber(ctx context.Context, accountNumber string) (bool, error)
	// LockByIDForUser loads an account with a FOR UPDATE row lock inside tx.
	LockByIDForUser(ctx context.Context, tx pgx.Tx, accountID, userID uuid.UUID) (models.Account, error)
	// LockByNumber loads any user's account by its number with a FOR UPDATE row lock.
	LockByNumber(ctx context.Context, tx pgx.Tx, accountNumber string) (models.Account, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, balance decimal.Decimal) error
}

type AccountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

const accountColumns = `id, user_id, account_number, account_name, balance, created_at`

func (a AccountRepositoryImpl) Create(ctx context.Context, account models.Account) error {
	_, err := a.db.Exec(ctx, `INSERT INTO accounts (id, user_id, account_number, account_name, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		account.ID, account.UserID, account.AccountNumber, account.AccountName, account.Balance, account.CreatedAt)
	return err
}

func (a AccountRepositoryImpl) FindByIDForUser(ctx context.Context, accountID, userID uuid.UUID) (models.Account, error) {
	row := a.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 AND user_id = $2`,
		accountID, userID)
	return scanAccount(row)
}

func (a AccountRepositoryImpl) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	rows, err := a.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE user_id = $1 ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (a AccountRepositoryImpl) ExistsByNumber(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	err := a.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = $1)`,
		accountNumber).Scan(&exists)
	return exists, err
}

func (a AccountRepositoryImpl) LockByIDForUser(ctx context.Context, tx pgx.Tx, accountID, userID uuid.UUID) (models.Account, error) {
	row := tx.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		accountID, userID)
	return scanAccount(row)
}

func (a AccountRepositoryImpl) LockByNumber(ctx context.Context, tx pgx.Tx, accountNumber string) (models.Account, error) {
	row := tx.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_number = $1 FOR UPDATE`,
		accountNumber)
	return scanAccount(row)
}

func (a AccountRepositoryImpl) UpdateBalance(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, balance decimal.Decimal) error {
	_, err := tx.Exec(ctx, `UPDATE accounts SET balance = $1 WHERE id = $2`, balance, accountID)
	return err
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var account models.Account
	err := row.Scan(&account.ID, &account.UserID, &account.AccountNumber,
		&account.AccountName, &account.Balance, &account.CreatedAt)
	return account, err
}
