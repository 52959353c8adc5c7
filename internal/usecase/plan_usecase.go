package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"
)

var ErrPlanNotFound = errors.New("plan not found")

// IPlanUseCase exposes the read-only plan catalog.

type IPlanUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	List(ctx context.Context) ([]entities.Plan, error)
}

type PlanUseCase struct {
	repo interfaces.IPlanRepository
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(repo interfaces.IPlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

func (u *PlanUseCase) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Plan{}, fmt.Errorf("%w: plan id is required", ErrInvalidRequest)
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Plan{}, err
	}
	if p.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	return p, nil
}

func (u *PlanUseCase) List(ctx context.Context) ([]entities.Plan, error) {
	return u.repo.List(ctx)
}
