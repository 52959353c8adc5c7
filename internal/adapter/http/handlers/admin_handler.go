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

var errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid status payload", http.StatusBadRequest)

// AdminHandler handles the operator routes: lifecycle overrides and manual
// payment confirmation for the transfer route. The fronting gateway is
// expected to restrict who can reach these paths.

type AdminHandler struct {
	orders     usecase.IOrderUseCase
	reconciler usecase.IPaymentReconcilerUseCase
}

func NewAdminHandler(orders usecase.IOrderUseCase, reconciler usecase.IPaymentReconcilerUseCase) *AdminHandler {
	return &AdminHandler{orders: orders, reconciler: reconciler}
}

// OverrideServiceStatus forces a service into the given lifecycle state.
func (h *AdminHandler) OverrideServiceStatus(c *gin.Context) {
	var payload request.ServiceStatusOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	svc, err := h.orders.OverrideServiceStatus(c.Request.Context(), c.Param("service_id"),
		entities.ServiceStatus(payload.ResolveStatus()))
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

// ConfirmPayment settles a manual-transfer invoice and activates the service.
func (h *AdminHandler) ConfirmPayment(c *gin.Context) {
	svc, err := h.reconciler.ConfirmManualPayment(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
