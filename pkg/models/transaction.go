package models

import (
	"time"

	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction maps to table `transactions`. Rows are immutable: they are
// inserted once per affected account and never updated or deleted.
// Amounts are positive; Type carries the direction.
type Transaction struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	Amount           decimal.Decimal
	Type             pkg.TransactionType
	Description      string
	BalanceAfter     decimal.Decimal
	RecipientAccount *string // counterparty account number, when applicable
	CreatedAt        time.Time
}
