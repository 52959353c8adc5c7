package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nimbushost/internal/adapter/http/handlers/mocks"
	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPanelHandler_IssuePanelSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPanelHandler(mocks.NewMockIPanelSessionUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/services/:service_id/panel-session", h.IssuePanelSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/s1/panel-session", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("not eligible mapped to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPanelSessionUseCase(ctrl)
		h := NewPanelHandler(uc)

		r := gin.New()
		r.POST("/v1/services/:service_id/panel-session", h.IssuePanelSession)

		uc.EXPECT().IssuePanelSession(gomock.Any(), "u1", "s1").
			Return(entities.PanelCredential{}, usecase.ErrNotEligible)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/s1/panel-session", nil)
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPanelSessionUseCase(ctrl)
		h := NewPanelHandler(uc)

		r := gin.New()
		r.POST("/v1/services/:service_id/panel-session", h.IssuePanelSession)

		uc.EXPECT().IssuePanelSession(gomock.Any(), "u1", "s1").
			Return(entities.PanelCredential{
				Username:  "mysite",
				Password:  "3f7a",
				Token:     "9c2e",
				ExpiresAt: time.Now().UTC().Add(time.Hour),
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/s1/panel-session", nil)
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["username"] != "mysite" || body["password"] != "3f7a" || body["token"] != "9c2e" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
