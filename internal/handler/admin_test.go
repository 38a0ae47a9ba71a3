package handler_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_ListOrders(t *testing.T) {
	orders := []entities.Order{{OrderNumber: "123456", Status: entities.OrderStatusPending, CreatedAt: time.Now()}}

	testCases := []struct {
		name         string
		target       string
		mockBehavior func(svc *mocks.MockAdminService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "default limit",
			target: "/admin/orders",
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().ListOrders(mock.Anything, uint64(50)).Return(orders, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"123456"`,
		},
		{
			name:   "custom limit",
			target: "/admin/orders?limit=10",
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().ListOrders(mock.Anything, uint64(10)).Return(orders, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Pending"`,
		},
		{
			name:         "limit too large",
			target:       "/admin/orders?limit=501",
			mockBehavior: func(svc *mocks.MockAdminService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid limit"`,
		},
		{
			name:         "limit not a number",
			target:       "/admin/orders?limit=ten",
			mockBehavior: func(svc *mocks.MockAdminService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid limit"`,
		},
		{
			name:   "internal error",
			target: "/admin/orders",
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAdminService(t)
			tc.mockBehavior(svc)

			h := handler.NewAdminHandler(discardLogger(), svc, nairobi, "/uploads/", nil)
			res, body := serve(t, h, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestAdminHandler_NewOrders(t *testing.T) {
	svc := mocks.NewMockAdminService(t)
	svc.EXPECT().NewOrders(mock.Anything).Return([]entities.Order{
		{OrderNumber: "111111", Notification: entities.NotificationNew},
	}, nil).Once()

	h := handler.NewAdminHandler(discardLogger(), svc, nairobi, "/uploads/", nil)
	res, body := serve(t, h, http.MethodGet, "/admin/orders/new", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"notification":"new"`)
}

func TestAdminHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAdminService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().UpdateStatus(mock.Anything, "123456", entities.OrderStatusShipped).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status updated"`,
		},
		{
			name:         "unknown status",
			body:         `{"status":"lost"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid order status"`,
		},
		{
			name:         "missing status",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockAdminService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Status":"required"`,
		},
		{
			name: "forbidden transition",
			body: `{"status":"Shipped"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().UpdateStatus(mock.Anything, "123456", entities.OrderStatusShipped).Return(entities.ErrStatusConflict).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order status does not allow this operation"`,
		},
		{
			name: "not found",
			body: `{"status":"Delivered"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().UpdateStatus(mock.Anything, "123456", entities.OrderStatusDelivered).Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAdminService(t)
			tc.mockBehavior(svc)

			h := handler.NewAdminHandler(discardLogger(), svc, nairobi, "/uploads/", nil)
			res, body := serve(t, h, http.MethodPut, "/admin/orders/123456/status", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestAdminHandler_ClearNotification(t *testing.T) {
	svc := mocks.NewMockAdminService(t)
	svc.EXPECT().ClearNotification(mock.Anything, "123456").Return(nil).Once()

	h := handler.NewAdminHandler(discardLogger(), svc, nairobi, "/uploads/", nil)
	res, body := serve(t, h, http.MethodPut, "/admin/orders/123456/notification", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"notification cleared"`)
}

func signAdminToken(t *testing.T, secret, sub, role string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminHandler_UpdateStatusLogsAdmin(t *testing.T) {
	const secret = "admin-secret"

	svc := mocks.NewMockAdminService(t)
	svc.EXPECT().UpdateStatus(mock.Anything, "123456", entities.OrderStatusShipped).Return(nil).Once()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	h := handler.NewAdminHandler(logger, svc, nairobi, "/uploads/", middleware.AdminOnly(secret))
	r := chi.NewRouter()
	h.Init(r)

	req := httptest.NewRequest(http.MethodPut, "/admin/orders/123456/status", strings.NewReader(`{"status":"Shipped"}`))
	req.Header.Set("Authorization", "Bearer "+signAdminToken(t, secret, "42", "admin"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logs.String(), "order status updated")
	assert.Contains(t, logs.String(), "admin_id=42")
	assert.Contains(t, logs.String(), "order_number=123456")
}

func TestAdminHandler_Guard(t *testing.T) {
	const secret = "admin-secret"

	sign := func(t *testing.T, role string) string {
		return signAdminToken(t, secret, "1", role)
	}

	testCases := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized},
		{name: "customer", token: sign(t, "customer"), wantStatus: http.StatusForbidden},
		{name: "admin", token: sign(t, "admin"), wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAdminService(t)
			if tc.wantStatus == http.StatusOK {
				svc.EXPECT().NewOrders(mock.Anything).Return(nil, nil).Once()
			}

			h := handler.NewAdminHandler(discardLogger(), svc, nairobi, "/uploads/", middleware.AdminOnly(secret))
			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodGet, "/admin/orders/new", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
