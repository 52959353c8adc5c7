package handlers

import (
	"errors"
	"net/http"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase"
	"nimbushost/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives gateway payment notifications.
//
// The raw body must reach signature verification untouched, so this handler
// never binds JSON; it reads the bytes and hands them down with the
// signature material from the delivery headers.

type WebhookHandler struct {
	usecase usecase.IPaymentReconcilerUseCase
	logger  *zap.Logger
}

func NewWebhookHandler(uc usecase.IPaymentReconcilerUseCase, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{usecase: uc, logger: logger}
}

// HandleGatewayEvent processes one webhook delivery for the gateway named
// in the path. A 2xx acknowledges the delivery; senders retry anything else.
func (h *WebhookHandler) HandleGatewayEvent(c *gin.Context) {
	gatewayName := c.Param("gateway")

	payload, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unable to read request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sig := signatureFromHeaders(c, gatewayName)
	if err := h.usecase.OnGatewayEvent(c.Request.Context(), gatewayName, payload, sig); err != nil {
		appErr := mapWebhookError(err)
		h.logger.Warn("webhook delivery failed",
			zap.String("gateway", gatewayName),
			zap.Int("status", appErr.HTTPStatus),
			zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// signatureFromHeaders picks the authenticity material each gateway sends:
// Stripe uses Stripe-Signature, Mercado Pago x-signature plus x-request-id.
func signatureFromHeaders(c *gin.Context, gatewayName string) entities.WebhookSignature {
	if gatewayName == string(entities.PaymentMethodStripe) {
		return entities.WebhookSignature{Header: c.GetHeader("Stripe-Signature")}
	}
	return entities.WebhookSignature{
		Header:    c.GetHeader("x-signature"),
		RequestID: c.GetHeader("x-request-id"),
	}
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainErrorSimple("UNKNOWN_GATEWAY", "Unknown payment gateway", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureInvalid):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrDependencyTimeout):
		return pkg.NewDomainErrorSimple("DEPENDENCY_TIMEOUT", "Upstream dependency timed out", http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
