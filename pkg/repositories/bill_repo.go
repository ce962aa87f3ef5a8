package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/database"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
)

// BillRepository defines the interface for bill persistence.
type BillRepository interface {
	Create(ctx context.Context, bill models.Bill) error
	// FindAllByUser returns the caller's bills sorted by due date ascending.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]models.Bill, error)
	// MarkOverdueByUser flips the caller's pending bills whose due date has
	// passed to overdue, returning how many rows changed. Flipped rows no
	// longer match, so repeated calls are no-ops.
	MarkOverdueByUser(ctx context.Context, userID uuid.UUID, asOf time.Time) (int64, error)
	LockByIDForUser(ctx context.Context, tx pgx.Tx, billID, userID uuid.UUID) (models.Bill, error)
	MarkPaid(ctx context.Context, tx pgx.Tx, billID uuid.UUID, paidAt time.Time) error
	// DeleteByIDForUser hard-deletes and returns the number of rows removed.
	DeleteByIDForUser(ctx context.Context, billID, userID uuid.UUID) (int64, error)
}

type BillRepositoryImpl struct {
	db *database.DB
}

func NewBillRepository(db *database.DB) BillRepository {
	return &BillRepositoryImpl{db: db}
}

const billColumns = `id, user_id, bill_type, provider_name, amount, due_date, account_number, status, paid_at, created_at`

func (b BillRepositoryImpl) Create(ctx context.Context, bill models.Bill) error {
	_, err := b.db.Exec(ctx, `INSERT INTO bills
		(id, user_id, bill_type, provider_name, amount, due_date, account_number, status, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		bill.ID,
		bill.UserID,
		bill.BillType,
		bill.ProviderName,
		bill.Amount,
		bill.DueDate,
		bill.AccountNumber,
		bill.Status,
		bill.PaidAt,
		bill.CreatedAt,
	)
	return err
}

func (b BillRepositoryImpl) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]models.Bill, error) {
	rows, err := b.db.Query(ctx, `SELECT `+billColumns+` FROM bills WHERE user_id = $1 ORDER BY due_date`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, rows.Err()
}

func (b BillRepositoryImpl) MarkOverdueByUser(ctx context.Context, userID uuid.UUID, asOf time.Time) (int64, error) {
	tag, err := b.db.Exec(ctx, `UPDATE bills SET status = $1 WHERE user_id = $2 AND status = $3 AND due_date < $4`,
		pkg.BillStatusOverdue, userID, pkg.BillStatusPending, asOf)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (b BillRepositoryImpl) LockByIDForUser(ctx context.Context, tx pgx.Tx, billID, userID uuid.UUID) (models.Bill, error) {
	row := tx.QueryRow(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		billID, userID)
	return scanBill(row)
}

func (b BillRepositoryImpl) MarkPaid(ctx context.Context, tx pgx.Tx, billID uuid.UUID, paidAt time.Time) error {
	_, err := tx.Exec(ctx, `UPDATE bills SET status = $1, paid_at = $2 WHERE id = $3`,
		pkg.BillStatusPaid, paidAt, billID)
	return err
}

func (b BillRepositoryImpl) DeleteByIDForUser(ctx context.Context, billID, userID uuid.UUID) (int64, error) {
	tag, err := b.db.Exec(ctx, `DELETE FROM bills WHERE id = $1 AND user_id = $2`, billID, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanBill(row pgx.Row) (models.Bill, error) {
	var bill models.Bill
	err := row.Scan(&bill.ID, &bill.UserID, &bill.BillType, &bill.ProviderName, &bill.Amount,
		&bill.DueDate, &bill.AccountNumber, &bill.Status, &bill.PaidAt, &bill.CreatedAt)
	return bill, err
}
