package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AnasIqbal56/Banking-App/pkg"
)

// TransactionCompleted is emitted after a balance mutation commits.
// Consumers (notifications, analytics) are outside this service.
type TransactionCompleted struct {
	TransactionID   uuid.UUID           `json:"transactionId"`
	AccountID       uuid.UUID           `json:"accountId"`
	UserID          uuid.UUID           `json:"userId"`
	TransactionType pkg.TransactionType `json:"transactionType"`
	Amount          decimal.Decimal     `json:"amount"`
	BalanceAfter    decimal.Decimal     `json:"balanceAfter"`
	OccurredAt      time.Time           `json:"occurredAt"`
}

// Publisher publishes ledger events. Publishing is fire-and-forget: a failed
// publish never fails the request that produced the event.
type Publisher interface {
	PublishTransaction(event TransactionCompleted) error
	Close()
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() Publisher { return NoopPublisher{} }

func (NoopPublisher) PublishTransaction(TransactionCompleted) error { return nil }
func (NoopPublisher) Close()                                        {}
