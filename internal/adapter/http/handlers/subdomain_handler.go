package handlers

import (
	"errors"
	"net/http"

	request "nimbushost/internal/adapter/http/dto/request"
	response "nimbushost/internal/adapter/http/dto/response"
	"nimbushost/internal/usecase"
	"nimbushost/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSubdomainPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid subdomain payload", http.StatusBadRequest)

// SubdomainHandler handles HTTP requests for hostname reservations.

type SubdomainHandler struct {
	usecase usecase.ISubdomainUseCase
}

func NewSubdomainHandler(uc usecase.ISubdomainUseCase) *SubdomainHandler {
	return &SubdomainHandler{usecase: uc}
}

// ProvisionSubdomain claims a label under the platform root domain and
// creates the site on the hosting infrastructure.
func (h *SubdomainHandler) ProvisionSubdomain(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var payload request.SubdomainCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubdomainPayload.HTTPStatus, errInvalidSubdomainPayload.ToHTTPError())
		return
	}

	sd, err := h.usecase.Provision(c.Request.Context(), userID, payload.ResolveLabel(), payload.ResolveServiceID())
	if err != nil {
		appErr := mapSubdomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubdomain(sd))
}

func (h *SubdomainHandler) ListSubdomains(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sds, err := h.usecase.ListSubdomains(c.Request.Context(), userID)
	if err != nil {
		appErr := mapSubdomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubdomains(sds))
}

func mapSubdomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLabel):
		return pkg.NewDomainErrorSimple("INVALID_LABEL", "Subdomain label must be 3-30 lowercase alphanumerics with internal hyphens", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyTaken):
		return pkg.NewDomainErrorSimple("SUBDOMAIN_TAKEN", "Subdomain already taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotConfigured):
		return pkg.NewDomainErrorSimple("PLATFORM_NOT_CONFIGURED", "Platform setting missing", http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrProvisioningFailed):
		return pkg.NewDomainErrorSimple("PROVISIONING_FAILED", "Provisioning backend rejected the request", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrDependencyTimeout):
		return pkg.NewDomainErrorSimple("DEPENDENCY_TIMEOUT", "Provisioning backend timed out", http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
