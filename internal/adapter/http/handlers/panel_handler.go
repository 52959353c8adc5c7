package handlers

import (
	"errors"
	"net/http"

	response "nimbushost/internal/adapter/http/dto/response"
	"nimbushost/internal/usecase"
	"nimbushost/pkg"

	"github.com/gin-gonic/gin"
)

// PanelHandler issues control-panel credential bundles.

type PanelHandler struct {
	usecase usecase.IPanelSessionUseCase
}

func NewPanelHandler(uc usecase.IPanelSessionUseCase) *PanelHandler {
	return &PanelHandler{usecase: uc}
}

// IssuePanelSession mints a fresh credential bundle for an active,
// provisioned service. The secrets appear only in this response.
func (h *PanelHandler) IssuePanelSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	cred, err := h.usecase.IssuePanelSession(c.Request.Context(), userID, c.Param("service_id"))
	if err != nil {
		appErr := mapPanelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPanelCredential(cred))
}

func mapPanelError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotEligible):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_ELIGIBLE", "Service is not eligible for panel access", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDependencyTimeout):
		return pkg.NewDomainErrorSimple("DEPENDENCY_TIMEOUT", "Credential store timed out", http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
