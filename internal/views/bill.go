package views

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
)

type BillRequest struct {
	BillType      string          `json:"billType" binding:"required"`
	ProviderName  string          `json:"providerName" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	DueDate       time.Time       `json:"dueDate" binding:"required"`
	AccountNumber string          `json:"accountNumber" binding:"required"` // provider account number
}

type BillPaymentRequest struct {
	BillID        uuid.UUID `json:"billId" binding:"required"`
	FromAccountID uuid.UUID `json:"fromAccountId" binding:"required"`
}

type BillResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	BillType      pkg.BillType    `json:"billType"`
	ProviderName  string          `json:"providerName"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate"`
	AccountNumber string          `json:"accountNumber"`
	Status        pkg.BillStatus  `json:"status"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func NewBillResponse(bill models.Bill) BillResponse {
	return BillResponse{
		ID:            bill.ID.String(),
		UserID:        bill.UserID.String(),
		BillType:      bill.BillType,
		ProviderName:  bill.ProviderName,
		Amount:        bill.Amount,
		DueDate:       bill.DueDate,
		AccountNumber: bill.AccountNumber,
		Status:        bill.Status,
		PaidAt:        bill.PaidAt,
		CreatedAt:     bill.CreatedAt,
	}
}
