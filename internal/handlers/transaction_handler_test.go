package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnasIqbal56/Banking-App/internal/views"
	"github.com/AnasIqbal56/Banking-App/pkg"
)

func TestCreateTransactionHandler(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	svc := &fakeLedgerService{
		create: func(_ context.Context, _ string, gotUser, gotAccount uuid.UUID, req views.TransactionRequest) (views.TransactionResponse, error) {
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, accountID, gotAccount)
			assert.Equal(t, "deposit", req.TransactionType)
			return views.TransactionResponse{
				ID:              uuid.NewString(),
				AccountID:       gotAccount.String(),
				Amount:          req.Amount,
				TransactionType: pkg.TransactionDeposit,
				BalanceAfter:    req.Amount,
			}, nil
		},
	}
	h := NewTransactionHandler(nopLogger(), svc)
	r := newTestRouter(userID, h.RegisterRoutes)

	body := `{"amount":"25.50","transactionType":"deposit"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/accounts/"+accountID.String()+"/transactions", &body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp views.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pkg.TransactionDeposit, resp.TransactionType)
}

func TestCreateTransactionHandlerInsufficientFunds(t *testing.T) {
	svc := &fakeLedgerService{
		create: func(_ context.Context, _ string, _, _ uuid.UUID, _ views.TransactionRequest) (views.TransactionResponse, error) {
			return views.TransactionResponse{}, pkg.NewAppError(pkg.ErrInsufficientFundsCode, "insufficient funds", pkg.ErrInsufficientFunds)
		},
	}
	h := NewTransactionHandler(nopLogger(), svc)
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	body := `{"amount":"100.00","transactionType":"withdrawal"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/accounts/"+uuid.NewString()+"/transactions", &body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp pkg.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pkg.ErrInsufficientFundsCode.Code, resp.Code)
	assert.Equal(t, "insufficient funds", resp.Message)
}

func TestCreateTransactionHandlerBadAccountID(t *testing.T) {
	h := NewTransactionHandler(nopLogger(), &fakeLedgerService{})
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	body := `{"amount":"10.00","transactionType":"deposit"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/accounts/not-a-uuid/transactions", &body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTransactionsHandler(t *testing.T) {
	accountID := uuid.New()
	var gotLimit int
	svc := &fakeLedgerService{
		list: func(_ context.Context, _ string, _, _ uuid.UUID, limit int) ([]views.TransactionResponse, error) {
			gotLimit = limit
			return []views.TransactionResponse{{ID: uuid.NewString()}}, nil
		},
	}
	h := NewTransactionHandler(nopLogger(), svc)
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	w := doRequest(t, r, http.MethodGet, "/api/v1/accounts/"+accountID.String()+"/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, gotLimit)

	w = doRequest(t, r, http.MethodGet, "/api/v1/accounts/"+accountID.String()+"/transactions?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, gotLimit)

	w = doRequest(t, r, http.MethodGet, "/api/v1/accounts/"+accountID.String()+"/transactions?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
