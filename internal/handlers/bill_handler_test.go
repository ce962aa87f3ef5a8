package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnasIqbal56/Banking-App/internal/views"
	"github.com/AnasIqbal56/Banking-App/pkg"
)

func TestCreateBillHandler(t *testing.T) {
	userID := uuid.New()
	svc := &fakeBillService{
		create: func(_ context.Context, _ string, gotUser uuid.UUID, req views.BillRequest) (views.BillResponse, error) {
			assert.Equal(t, userID, gotUser)
			return views.BillResponse{
				ID:           uuid.NewString(),
				BillType:     pkg.BillType(req.BillType),
				ProviderName: req.ProviderName,
				Status:       pkg.BillStatusPending,
			}, nil
		},
	}
	h := NewBillHandler(nopLogger(), svc)
	r := newTestRouter(userID, h.RegisterRoutes)

	body := `{"billType":"internet","providerName":"FastNet","amount":"59.99","dueDate":"2026-09-15T00:00:00Z","accountNumber":"5555555555"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/bills", &body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp views.BillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pkg.BillStatusPending, resp.Status)
}

func TestCreateBillHandlerMissingFields(t *testing.T) {
	h := NewBillHandler(nopLogger(), &fakeBillService{})
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	body := `{"billType":"internet"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/bills", &body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBillsHandler(t *testing.T) {
	svc := &fakeBillService{
		list: func(_ context.Context, _ string, _ uuid.UUID) ([]views.BillResponse, error) {
			return []views.BillResponse{{Status: pkg.BillStatusOverdue}}, nil
		},
	}
	h := NewBillHandler(nopLogger(), svc)
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	w := doRequest(t, r, http.MethodGet, "/api/v1/bills", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []views.BillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, pkg.BillStatusOverdue, resp[0].Status)
}

func TestPayBillHandler(t *testing.T) {
	billID := uuid.New()
	accountID := uuid.New()
	paidAt := time.Now().UTC()
	svc := &fakeBillService{
		pay: func(_ context.Context, _ string, _ uuid.UUID, req views.BillPaymentRequest) (views.BillResponse, error) {
			assert.Equal(t, billID, req.BillID)
			assert.Equal(t, accountID, req.FromAccountID)
			return views.BillResponse{ID: billID.String(), Status: pkg.BillStatusPaid, PaidAt: &paidAt}, nil
		},
	}
	h := NewBillHandler(nopLogger(), svc)
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	body := `{"billId":"` + billID.String() + `","fromAccountId":"` + accountID.String() + `"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/bills/pay", &body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp views.BillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pkg.BillStatusPaid, resp.Status)
	assert.NotNil(t, resp.PaidAt)
}

func TestPayBillHandlerAlreadyPaid(t *testing.T) {
	svc := &fakeBillService{
		pay: func(_ context.Context, _ string, _ uuid.UUID, _ views.BillPaymentRequest) (views.BillResponse, error) {
			return views.BillResponse{}, pkg.NewAppError(pkg.ErrBusinessRuleCode, pkg.ErrBillAlreadyPaid.Error(), pkg.ErrBillAlreadyPaid)
		},
	}
	h := NewBillHandler(nopLogger(), svc)
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	body := `{"billId":"` + uuid.NewString() + `","fromAccountId":"` + uuid.NewString() + `"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/bills/pay", &body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp pkg.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pkg.ErrBusinessRuleCode.Code, resp.Code)
}

func TestDeleteBillHandler(t *testing.T) {
	billID := uuid.New()
	svc := &fakeBillService{
		delete: func(_ context.Context, _ string, _, gotBill uuid.UUID) error {
			if gotBill != billID {
				return pkg.NewAppError(pkg.ErrRecordNotFoundCode, "bill not found", nil)
			}
			return nil
		},
	}
	h := NewBillHandler(nopLogger(), svc)
	r := newTestRouter(uuid.New(), h.RegisterRoutes)

	w := doRequest(t, r, http.MethodDelete, "/api/v1/bills/"+billID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doRequest(t, r, http.MethodDelete, "/api/v1/bills/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/v1/bills/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
