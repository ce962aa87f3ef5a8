package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account maps to table `accounts`. Balance is only ever mutated through
// ledger operations (deposit, withdrawal, transfer, bill payment).
type Account struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	AccountNumber string // unique 10-digit number
	AccountName   string
	Balance       decimal.Decimal
	CreatedAt     time.Time
}
