package handlers

import (
	"errors"
	"net/http"

	response "nimbushost/internal/adapter/http/dto/response"
	"nimbushost/internal/usecase"
	"nimbushost/pkg"

	"github.com/gin-gonic/gin"
)

// PlanHandler exposes the read-only plan catalog.

type PlanHandler struct {
	usecase usecase.IPlanUseCase
}

func NewPlanHandler(uc usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlans(plans))
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("plan_id"))
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlan(p))
}

func mapPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
