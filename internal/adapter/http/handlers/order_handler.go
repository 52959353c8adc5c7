package handlers

import (
	"errors"
	"net/http"

	request "nimbushost/internal/adapter/http/dto/request"
	response "nimbushost/internal/adapter/http/dto/response"
	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase"
	"nimbushost/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for services and their invoices.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// PlaceOrder creates a service and its invoice from a plan selection.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.PlaceOrder(c.Request.Context(), userID, payload.ResolvePlanID(),
		entities.PaymentMethod(payload.ResolvePaymentMethod()))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(svc))
}

// CreateCheckout opens a payment session for the service's unpaid invoice.
func (h *OrderHandler) CreateCheckout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	cs, err := h.usecase.CreateCheckout(c.Request.Context(), userID, c.Param("service_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckout(cs))
}

func (h *OrderHandler) GetService(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	svc, err := h.usecase.GetService(c.Request.Context(), userID, c.Param("service_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

func (h *OrderHandler) ListServices(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	services, err := h.usecase.ListServices(c.Request.Context(), userID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *OrderHandler) GetInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	inv, err := h.usecase.GetInvoice(c.Request.Context(), userID, c.Param("service_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLimitExceeded):
		return pkg.NewDomainErrorSimple("FREE_LIMIT_EXCEEDED", "Free plan limit reached for this account", http.StatusForbidden)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrDependencyTimeout):
		return pkg.NewDomainErrorSimple("DEPENDENCY_TIMEOUT", "Upstream dependency timed out", http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
