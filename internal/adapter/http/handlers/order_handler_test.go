package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nimbushost/internal/adapter/http/handlers/mocks"
	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_PlaceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/services", h.PlaceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"plan_id":"p1","payment_method":"stripe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/services", h.PlaceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"plan_id":"p1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("free limit mapped to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.PlaceOrder)

		uc.EXPECT().PlaceOrder(gomock.Any(), "u1", "p0", entities.PaymentMethodStripe).
			Return(entities.Service{}, usecase.ErrLimitExceeded)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"plan_id":"p0","payment_method":"Stripe"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.PlaceOrder)

		uc.EXPECT().PlaceOrder(gomock.Any(), "u1", "p1", entities.PaymentMethodStripe).
			Return(entities.Service{ID: "s1", PlanID: "p1", Status: entities.ServiceStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"plan_id":"p1","payment_method":"stripe"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "s1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("service not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/services/:service_id/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), "u1", "s404").
			Return(entities.CheckoutSession{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/s404/checkout", nil)
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("gateway not configured mapped to 412", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/services/:service_id/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), "u1", "s1").
			Return(entities.CheckoutSession{}, usecase.ErrNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/s1/checkout", nil)
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPreconditionFailed {
			t.Fatalf("expected 412, got %d", w.Code)
		}
	})

	t.Run("gateway timeout mapped to 504", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/services/:service_id/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), "u1", "s1").
			Return(entities.CheckoutSession{}, usecase.ErrDependencyTimeout)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/s1/checkout", nil)
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/services/:service_id/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), "u1", "s1").
			Return(entities.CheckoutSession{Reference: "cs_123", URL: "https://checkout.stripe.com/cs_123"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/s1/checkout", nil)
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["reference"] != "cs_123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get service success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/services/:service_id", h.GetService)

		uc.EXPECT().GetService(gomock.Any(), "u1", "s1").
			Return(entities.Service{ID: "s1", Status: entities.ServiceStatusActive}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/s1", nil)
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list services success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/services", h.ListServices)

		uc.EXPECT().ListServices(gomock.Any(), "u1").
			Return([]entities.Service{{ID: "s1"}, {ID: "s2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/services/:service_id/invoice", h.GetInvoice)

		uc.EXPECT().GetInvoice(gomock.Any(), "u1", "s1").
			Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/s1/invoice", nil)
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
