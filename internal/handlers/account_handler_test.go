package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnasIqbal56/Banking-App/internal/views"
	"github.com/AnasIqbal56/Banking-App/pkg"
)

func TestCreateAccountHandler(t *testing.T) {
	userID := uuid.New()
	svc := &fakeAccountService{
		create: func(_ context.Context, _ string, gotUser uuid.UUID, req views.AccountRequest) (views.AccountResponse, error) {
			assert.Equal(t, userID, gotUser)
			return views.AccountResponse{
				ID:            uuid.NewString(),
				UserID:        gotUser.String(),
				AccountNumber: "1234567890",
				AccountName:   req.AccountName,
				Balance:       decimal.Zero,
			}, nil
		},
	}
	h := NewAccountHandler(nopLogger(), svc)
	r := newTestRouter(userID, h.RegisterRoutes)

	body := `{"accountName":"Savings"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/accounts", &body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp views.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Savings", resp.AccountName)
	assert.Equal(t, "1234567890", resp.AccountNumber)
}

func TestCreateAccountHandlerBadBody(t *testing.T) {
	h := NewAccountHandler(nopLogger(), &fakeAccountService{})
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	// accountName is required with a minimum length.
	body := `{"accountName":"x"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/accounts", &body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp pkg.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pkg.ErrInvalidInputCode.Code, resp.Code)
}

func TestGetAccountHandler(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	svc := &fakeAccountService{
		get: func(_ context.Context, _ string, _, gotAccount uuid.UUID) (views.AccountResponse, error) {
			if gotAccount != accountID {
				return views.AccountResponse{}, pkg.NewAppError(pkg.ErrRecordNotFoundCode, "account not found", nil)
			}
			return views.AccountResponse{ID: gotAccount.String()}, nil
		},
	}
	h := NewAccountHandler(nopLogger(), svc)
	r := newTestRouter(userID, h.RegisterRoutes)

	w := doRequest(t, r, http.MethodGet, "/api/v1/accounts/"+accountID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/v1/accounts/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/v1/accounts/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAccountsHandler(t *testing.T) {
	svc := &fakeAccountService{
		list: func(_ context.Context, _ string, _ uuid.UUID) ([]views.AccountResponse, error) {
			return []views.AccountResponse{{AccountNumber: "1234567890"}}, nil
		},
	}
	h := NewAccountHandler(nopLogger(), svc)
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	w := doRequest(t, r, http.MethodGet, "/api/v1/accounts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []views.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestAccountsTraceHeaderPropagated(t *testing.T) {
	svc := &fakeAccountService{
		list: func(_ context.Context, _ string, _ uuid.UUID) ([]views.AccountResponse, error) {
			return nil, nil
		},
	}
	h := NewAccountHandler(nopLogger(), svc)
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	w := doRequest(t, r, http.MethodGet, "/api/v1/accounts", nil)
	assert.NotEmpty(t, w.Header().Get(pkg.HeaderTraceId))
}
