package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/AnasIqbal56/Banking-App/internal/events"
	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
)

// In-memory fakes for the repository interfaces. The tx runner invokes the
// callback with a nil pgx.Tx; the fakes ignore the tx argument entirely.

type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	f.calls++
	return fn(ctx, nil)
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]models.Account
	// existing simulates number collisions for the next ExistsByNumber calls.
	existing []bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]models.Account)}
}

func (f *fakeAccountRepo) Create(_ context.Context, account models.Account) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) FindByIDForUser(_ context.Context, accountID, userID uuid.UUID) (models.Account, error) {
	account, ok := f.accounts[accountID]
	if !ok || account.UserID != userID {
		return models.Account{}, pgx.ErrNoRows
	}
	return account, nil
}

func (f *fakeAccountRepo) FindAllByUser(_ context.Context, userID uuid.UUID) ([]models.Account, error) {
	var out []models.Account
	for _, account := range f.accounts {
		if account.UserID == userID {
			out = append(out, account)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeAccountRepo) ExistsByNumber(_ context.Context, accountNumber string) (bool, error) {
	if len(f.existing) > 0 {
		exists := f.existing[0]
		f.existing = f.existing[1:]
		return exists, nil
	}
	for _, account := range f.accounts {
		if account.AccountNumber == accountNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) LockByIDForUser(ctx context.Context, _ pgx.Tx, accountID, userID uuid.UUID) (models.Account, error) {
	return f.FindByIDForUser(ctx, accountID, userID)
}

func (f *fakeAccountRepo) LockByNumber(_ context.Context, _ pgx.Tx, accountNumber string) (models.Account, error) {
	for _, account := range f.accounts {
		if account.AccountNumber == accountNumber {
			return account, nil
		}
	}
	return models.Account{}, pgx.ErrNoRows
}

func (f *fakeAccountRepo) UpdateBalance(_ context.Context, _ pgx.Tx, accountID uuid.UUID, balance decimal.Decimal) error {
	account := f.accounts[accountID]
	account.Balance = balance
	f.accounts[accountID] = account
	return nil
}

type fakeTransactionRepo struct {
	records []models.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, _ pgx.Tx, transaction models.Transaction) error {
	f.records = append(f.records, transaction)
	return nil
}

func (f *fakeTransactionRepo) FindByAccount(_ context.Context, accountID uuid.UUID, limit int) ([]models.Transaction, error) {
	var out []models.Transaction
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].AccountID == accountID {
			out = append(out, f.records[i])
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) forAccount(accountID uuid.UUID) []models.Transaction {
	var out []models.Transaction
	for _, record := range f.records {
		if record.AccountID == accountID {
			out = append(out, record)
		}
	}
	return out
}

type fakeBillRepo struct {
	bills map[uuid.UUID]models.Bill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]models.Bill)}
}

func (f *fakeBillRepo) Create(_ context.Context, bill models.Bill) error {
	f.bills[bill.ID] = bill
	return nil
}

func (f *fakeBillRepo) FindAllByUser(_ context.Context, userID uuid.UUID) ([]models.Bill, error) {
	var out []models.Bill
	for _, bill := range f.bills {
		if bill.UserID == userID {
			out = append(out, bill)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (f *fakeBillRepo) MarkOverdueByUser(_ context.Context, userID uuid.UUID, asOf time.Time) (int64, error) {
	var flipped int64
	for id, bill := range f.bills {
		if bill.UserID == userID && bill.Status == pkg.BillStatusPending && bill.DueDate.Before(asOf) {
			bill.Status = pkg.BillStatusOverdue
			f.bills[id] = bill
			flipped++
		}
	}
	return flipped, nil
}

func (f *fakeBillRepo) LockByIDForUser(_ context.Context, _ pgx.Tx, billID, userID uuid.UUID) (models.Bill, error) {
	bill, ok := f.bills[billID]
	if !ok || bill.UserID != userID {
		return models.Bill{}, pgx.ErrNoRows
	}
	return bill, nil
}

func (f *fakeBillRepo) MarkPaid(_ context.Context, _ pgx.Tx, billID uuid.UUID, paidAt time.Time) error {
	bill := f.bills[billID]
	bill.Status = pkg.BillStatusPaid
	bill.PaidAt = &paidAt
	f.bills[billID] = bill
	return nil
}

func (f *fakeBillRepo) DeleteByIDForUser(_ context.Context, billID, userID uuid.UUID) (int64, error) {
	bill, ok := f.bills[billID]
	if !ok || bill.UserID != userID {
		return 0, nil
	}
	delete(f.bills, billID)
	return 1, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) FindByID(_ context.Context, userID uuid.UUID) (models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return models.User{}, pgx.ErrNoRows
	}
	return user, nil
}

type fakePublisher struct {
	published []events.TransactionCompleted
}

func (f *fakePublisher) PublishTransaction(event events.TransactionCompleted) error {
	f.published = append(f.published, event)
	return nil
}

func (f *fakePublisher) Close() {}
