package views

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AnasIqbal56/Banking-App/pkg/models"
)

type AccountRequest struct {
	AccountName string `json:"accountName" binding:"required,min=2"`
}

type AccountResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func NewAccountResponse(account models.Account) AccountResponse {
	return AccountResponse{
		ID:            account.ID.String(),
		UserID:        account.UserID.String(),
		AccountNumber: account.AccountNumber,
		AccountName:   account.AccountName,
		Balance:       account.Balance,
		CreatedAt:     account.CreatedAt,
	}
}
