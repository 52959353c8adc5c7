package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nimbushost/internal/adapter/http/handlers/mocks"
	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newWebhookRouter(uc usecase.IPaymentReconcilerUseCase) *gin.Engine {
	r := gin.New()
	h := NewWebhookHandler(uc, zap.NewNop())
	r.POST("/v1/webhooks/:gateway", h.HandleGatewayEvent)
	return r
}

func TestWebhookHandler_HandleGatewayEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	payload := `{"id":"evt_1","type":"checkout.session.completed"}`

	t.Run("stripe signature header reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentReconcilerUseCase(ctrl)

		uc.EXPECT().OnGatewayEvent(gomock.Any(), "stripe", []byte(payload), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ []byte, sig entities.WebhookSignature) error {
				if sig.Header != "t=1,v1=abc" || sig.RequestID != "" {
					t.Fatalf("unexpected signature material: %+v", sig)
				}
				return nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(payload))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		w := httptest.NewRecorder()
		newWebhookRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mercadopago headers reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentReconcilerUseCase(ctrl)

		uc.EXPECT().OnGatewayEvent(gomock.Any(), "mercadopago", []byte(payload), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ []byte, sig entities.WebhookSignature) error {
				if sig.Header != "ts=1,v1=def" || sig.RequestID != "req-9" {
					t.Fatalf("unexpected signature material: %+v", sig)
				}
				return nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(payload))
		req.Header.Set("x-signature", "ts=1,v1=def")
		req.Header.Set("x-request-id", "req-9")
		w := httptest.NewRecorder()
		newWebhookRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown gateway mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentReconcilerUseCase(ctrl)

		uc.EXPECT().OnGatewayEvent(gomock.Any(), "paypal", gomock.Any(), gomock.Any()).
			Return(usecase.ErrInvalidRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paypal", bytes.NewBufferString(payload))
		w := httptest.NewRecorder()
		newWebhookRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad signature mapped to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentReconcilerUseCase(ctrl)

		uc.EXPECT().OnGatewayEvent(gomock.Any(), "stripe", gomock.Any(), gomock.Any()).
			Return(usecase.ErrSignatureInvalid)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(payload))
		req.Header.Set("Stripe-Signature", "t=1,v1=tampered")
		w := httptest.NewRecorder()
		newWebhookRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("storage failure is not acked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentReconcilerUseCase(ctrl)

		uc.EXPECT().OnGatewayEvent(gomock.Any(), "stripe", gomock.Any(), gomock.Any()).
			Return(context.DeadlineExceeded)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(payload))
		w := httptest.NewRecorder()
		newWebhookRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
