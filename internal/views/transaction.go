package views

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
)

type TransactionRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	TransactionType  string          `json:"transactionType" binding:"required"`
	Description      string          `json:"description"`
	RecipientAccount string          `json:"recipientAccount"` // for transfers
}

type TransactionResponse struct {
	ID               string              `json:"id"`
	AccountID        string              `json:"accountId"`
	Amount           decimal.Decimal     `json:"amount"`
	TransactionType  pkg.TransactionType `json:"transactionType"`
	Description      string              `json:"description"`
	BalanceAfter     decimal.Decimal     `json:"balanceAfter"`
	RecipientAccount *string             `json:"recipientAccount,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}

func NewTransactionResponse(txn models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               txn.ID.String(),
		AccountID:        txn.AccountID.String(),
		Amount:           txn.Amount,
		TransactionType:  txn.Type,
		Description:      txn.Description,
		BalanceAfter:     txn.BalanceAfter,
		RecipientAccount: txn.RecipientAccount,
		CreatedAt:        txn.CreatedAt,
	}
}
