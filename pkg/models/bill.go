package models

import (
	"time"

	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bill maps to table `bills`. AccountNumber is the provider's account
// number, not one of the user's accounts.
type Bill struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	BillType      pkg.BillType
	ProviderName  string
	Amount        decimal.Decimal
	DueDate       time.Time
	AccountNumber string
	Status        pkg.BillStatus
	PaidAt        *time.Time
	CreatedAt     time.Time
}
