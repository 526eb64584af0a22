package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/services/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testJWTKey = []byte("routes-test-secret-0123456789abc")

type testRouter struct {
	handler http.Handler
	user    *mocks.UserService
	master  *mocks.MasterService
	product *mocks.ProductService
	cart    *mocks.CartService
}

func newTestRouter(t *testing.T) testRouter {
	tr := testRouter{
		user:    mocks.NewUserService(t),
		master:  mocks.NewMasterService(t),
		product: mocks.NewProductService(t),
		cart:    mocks.NewCartService(t),
	}

	mux := http.NewServeMux()
	registerRoutes(mux, Services{
		User:         tr.user,
		Master:       tr.master,
		Party:        mocks.NewPartyService(t),
		Product:      tr.product,
		Purchase:     mocks.NewPurchaseService(t),
		Cart:         tr.cart,
		Sale:         mocks.NewSaleService(t),
		Label:        mocks.NewLabelService(t),
		Notification: mocks.NewNotificationService(t),
	}, middleware.NewAuthMiddleware(testJWTKey))
	tr.handler = mux

	return tr
}

func bearer(t *testing.T, role models.Role) string {
	t.Helper()

	claims := &models.Claims{
		UserID: uuid.New(),
		Email:  string(role) + "@store.in",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testJWTKey)
	require.NoError(t, err)

	return "Bearer " + token
}

func (tr testRouter) do(method, target, auth string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	rr := httptest.NewRecorder()
	tr.handler.ServeHTTP(rr, req)
	return rr
}

func TestRoutes(t *testing.T) {
	t.Run("Login is public", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.user.On("Login", mock.Anything, mock.Anything).Return(&models.LoginResponse{Success: true, Token: "t"}, nil).Once()

		rr := tr.do(http.MethodPost, "/api/v1/users/login", "", []byte(`{"email":"a@store.in","password":"x"}`))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Cart requires a token", func(t *testing.T) {
		tr := newTestRouter(t)

		rr := tr.do(http.MethodGet, "/api/v1/cart", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Cashier cannot manage users", func(t *testing.T) {
		tr := newTestRouter(t)

		rr := tr.do(http.MethodGet, "/api/v1/users", bearer(t, models.RoleCashier), nil)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Manager cannot create branches", func(t *testing.T) {
		tr := newTestRouter(t)

		rr := tr.do(http.MethodPost, "/api/v1/branches", bearer(t, models.RoleManager), []byte(`{"code":"B2","name":"Second"}`))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Master kinds are mounted by name", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.master.On("ListMasters", mock.Anything, models.MasterCategory, mock.Anything).Return([]*models.MasterRecord{}, 0, nil).Once()

		rr := tr.do(http.MethodGet, "/api/v1/categories", bearer(t, models.RoleCashier), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Low stock is not read as a product id", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.product.On("ListLowStock", mock.Anything).Return([]*models.Product{}, nil).Once()

		rr := tr.do(http.MethodGet, "/api/v1/products/low-stock", bearer(t, models.RoleManager), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Cashier can sell", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.cart.On("GetCart", mock.Anything, mock.Anything).Return(&models.CartView{Session: models.NewCartSession("t")}, nil).Once()

		rr := tr.do(http.MethodGet, "/api/v1/cart", bearer(t, models.RoleCashier), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
