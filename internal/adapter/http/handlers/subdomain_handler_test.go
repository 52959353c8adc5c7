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

func TestSubdomainHandler_ProvisionSubdomain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSubdomainHandler(mocks.NewMockISubdomainUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/subdomains", h.ProvisionSubdomain)

		req := httptest.NewRequest(http.MethodPost, "/v1/subdomains", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid label mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubdomainUseCase(ctrl)
		h := NewSubdomainHandler(uc)

		r := gin.New()
		r.POST("/v1/subdomains", h.ProvisionSubdomain)

		uc.EXPECT().Provision(gomock.Any(), "u1", "ab", "").
			Return(entities.Subdomain{}, usecase.ErrInvalidLabel)

		req := httptest.NewRequest(http.MethodPost, "/v1/subdomains", bytes.NewBufferString(`{"label":"ab"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_LABEL" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("taken mapped to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubdomainUseCase(ctrl)
		h := NewSubdomainHandler(uc)

		r := gin.New()
		r.POST("/v1/subdomains", h.ProvisionSubdomain)

		uc.EXPECT().Provision(gomock.Any(), "u1", "mysite", "").
			Return(entities.Subdomain{}, usecase.ErrAlreadyTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/subdomains", bytes.NewBufferString(`{"label":"mysite"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("provisioning failure mapped to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubdomainUseCase(ctrl)
		h := NewSubdomainHandler(uc)

		r := gin.New()
		r.POST("/v1/subdomains", h.ProvisionSubdomain)

		uc.EXPECT().Provision(gomock.Any(), "u1", "mysite", "").
			Return(entities.Subdomain{}, usecase.ErrProvisioningFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/subdomains", bytes.NewBufferString(`{"label":"mysite"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("label is normalized before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubdomainUseCase(ctrl)
		h := NewSubdomainHandler(uc)

		r := gin.New()
		r.POST("/v1/subdomains", h.ProvisionSubdomain)

		uc.EXPECT().Provision(gomock.Any(), "u1", "mysite", "s1").
			Return(entities.Subdomain{ID: "sd1", FQDN: "mysite.example.com", Label: "mysite", ServiceID: "s1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/subdomains", bytes.NewBufferString(`{"label":" MySite ","service_id":" s1 "}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(userIDHeader, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["fqdn"] != "mysite.example.com" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSubdomainHandler_ListSubdomains(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISubdomainUseCase(ctrl)
	h := NewSubdomainHandler(uc)

	r := gin.New()
	r.GET("/v1/subdomains", h.ListSubdomains)

	uc.EXPECT().ListSubdomains(gomock.Any(), "u1").
		Return([]entities.Subdomain{{ID: "sd1", FQDN: "mysite.example.com"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/subdomains", nil)
	req.Header.Set(userIDHeader, "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
