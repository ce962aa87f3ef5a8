package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/views"
	"github.com/AnasIqbal56/Banking-App/pkg"
	middleware "github.com/AnasIqbal56/Banking-App/pkg/middlewares"
)

// Function-backed service fakes so each test controls exactly one behavior.

type fakeAuthService struct {
	register    func(ctx context.Context, traceID string, req views.RegisterRequest) (views.UserResponse, error)
	login       func(ctx context.Context, traceID string, req views.LoginRequest) (views.TokenResponse, error)
	currentUser func(ctx context.Context, traceID string, userID uuid.UUID) (views.UserResponse, error)
}

func (f *fakeAuthService) Register(ctx context.Context, traceID string, req views.RegisterRequest) (views.UserResponse, error) {
	return f.register(ctx, traceID, req)
}

func (f *fakeAuthService) Login(ctx context.Context, traceID string, req views.LoginRequest) (views.TokenResponse, error) {
	return f.login(ctx, traceID, req)
}

func (f *fakeAuthService) CurrentUser(ctx context.Context, traceID string, userID uuid.UUID) (views.UserResponse, error) {
	return f.currentUser(ctx, traceID, userID)
}

type fakeAccountService struct {
	create func(ctx context.Context, traceID string, userID uuid.UUID, req views.AccountRequest) (views.AccountResponse, error)
	list   func(ctx context.Context, traceID string, userID uuid.UUID) ([]views.AccountResponse, error)
	get    func(ctx context.Context, traceID string, userID, accountID uuid.UUID) (views.AccountResponse, error)
}

func (f *fakeAccountService) CreateAccount(ctx context.Context, traceID string, userID uuid.UUID, req views.AccountRequest) (views.AccountResponse, error) {
	return f.create(ctx, traceID, userID, req)
}

func (f *fakeAccountService) ListAccounts(ctx context.Context, traceID string, userID uuid.UUID) ([]views.AccountResponse, error) {
	return f.list(ctx, traceID, userID)
}

func (f *fakeAccountService) GetAccount(ctx context.Context, traceID string, userID, accountID uuid.UUID) (views.AccountResponse, error) {
	return f.get(ctx, traceID, userID, accountID)
}

type fakeLedgerService struct {
	create func(ctx context.Context, traceID string, userID, accountID uuid.UUID, req views.TransactionRequest) (views.TransactionResponse, error)
	list   func(ctx context.Context, traceID string, userID, accountID uuid.UUID, limit int) ([]views.TransactionResponse, error)
}

func (f *fakeLedgerService) CreateTransaction(ctx context.Context, traceID string, userID, accountID uuid.UUID, req views.TransactionRequest) (views.TransactionResponse, error) {
	return f.create(ctx, traceID, userID, accountID, req)
}

func (f *fakeLedgerService) ListTransactions(ctx context.Context, traceID string, userID, accountID uuid.UUID, limit int) ([]views.TransactionResponse, error) {
	return f.list(ctx, traceID, userID, accountID, limit)
}

type fakeBillService struct {
	create func(ctx context.Context, traceID string, userID uuid.UUID, req views.BillRequest) (views.BillResponse, error)
	list   func(ctx context.Context, traceID string, userID uuid.UUID) ([]views.BillResponse, error)
	pay    func(ctx context.Context, traceID string, userID uuid.UUID, req views.BillPaymentRequest) (views.BillResponse, error)
	delete func(ctx context.Context, traceID string, userID, billID uuid.UUID) error
}

func (f *fakeBillService) CreateBill(ctx context.Context, traceID string, userID uuid.UUID, req views.BillRequest) (views.BillResponse, error) {
	return f.create(ctx, traceID, userID, req)
}

func (f *fakeBillService) ListBills(ctx context.Context, traceID string, userID uuid.UUID) ([]views.BillResponse, error) {
	return f.list(ctx, traceID, userID)
}

func (f *fakeBillService) PayBill(ctx context.Context, traceID string, userID uuid.UUID, req views.BillPaymentRequest) (views.BillResponse, error) {
	return f.pay(ctx, traceID, userID, req)
}

func (f *fakeBillService) DeleteBill(ctx context.Context, traceID string, userID, billID uuid.UUID) error {
	return f.delete(ctx, traceID, userID, billID)
}

// newTestRouter builds a router with the trace middleware and a stub auth
// layer that injects the given caller id, mirroring the production wiring.
func newTestRouter(userID uuid.UUID, register func(r *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.TraceID())
	api.Use(func(c *gin.Context) {
		c.Set(pkg.UserId, userID.String())
		c.Next()
	})
	register(api)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body *string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(*body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func nopLogger() *zap.Logger { return zap.NewNop() }
