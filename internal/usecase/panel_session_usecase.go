package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrNotEligible = errors.New("service not eligible for panel access")

const (
	panelPasswordBytes = 16
	panelTokenBytes    = 32
	panelSessionTTL    = time.Hour
)

// IPanelSessionUseCase mints control-panel credential bundles for active,
// provisioned services.

type IPanelSessionUseCase interface {
	IssuePanelSession(ctx context.Context, userID, serviceID string) (entities.PanelCredential, error)
}

type PanelSessionUseCase struct {
	serviceRepo interfaces.IServiceRepository
	credStore   interfaces.ICredentialStore
	logger      *zap.Logger
}

var _ IPanelSessionUseCase = (*PanelSessionUseCase)(nil)

func NewPanelSessionUseCase(serviceRepo interfaces.IServiceRepository, credStore interfaces.ICredentialStore, logger *zap.Logger) *PanelSessionUseCase {
	return &PanelSessionUseCase{serviceRepo: serviceRepo, credStore: credStore, logger: logger}
}

// IssuePanelSession always mints a fresh bundle; the side-channel write
// overwrites any previous bundle for the username, so at most one session
// per panel user is live.
func (u *PanelSessionUseCase) IssuePanelSession(ctx context.Context, userID, serviceID string) (entities.PanelCredential, error) {
	userID = strings.TrimSpace(userID)
	serviceID = strings.TrimSpace(serviceID)
	if userID == "" || serviceID == "" {
		return entities.PanelCredential{}, fmt.Errorf("%w: user id and service id are required", ErrInvalidRequest)
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.PanelCredential{}, err
	}
	if svc.ID == "" || svc.OwnerUserID != userID {
		return entities.PanelCredential{}, fmt.Errorf("%w: service not found for user", ErrNotEligible)
	}
	if svc.Status != entities.ServiceStatusActive {
		return entities.PanelCredential{}, fmt.Errorf("%w: service is %s", ErrNotEligible, svc.Status)
	}
	if svc.Subdomain == "" {
		return entities.PanelCredential{}, fmt.Errorf("%w: no subdomain provisioned", ErrNotEligible)
	}

	username := svc.PanelUsername
	if username == "" {
		username, _, _ = strings.Cut(svc.Subdomain, ".")
	}

	cred, err := newPanelCredential(username)
	if err != nil {
		return entities.PanelCredential{}, err
	}
	if err := u.credStore.Put(ctx, cred); err != nil {
		if isDependencyTimeout(err) {
			return entities.PanelCredential{}, fmt.Errorf("%w: %v", ErrDependencyTimeout, err)
		}
		return entities.PanelCredential{}, fmt.Errorf("failed to publish panel credential: %w", err)
	}

	u.logger.Info("panel session issued",
		zap.String("service_id", serviceID),
		zap.String("username", username))
	return cred, nil
}

func newPanelCredential(username string) (entities.PanelCredential, error) {
	password, err := randomHex(panelPasswordBytes)
	if err != nil {
		return entities.PanelCredential{}, fmt.Errorf("failed to generate panel password: %w", err)
	}
	token, err := randomHex(panelTokenBytes)
	if err != nil {
		return entities.PanelCredential{}, fmt.Errorf("failed to generate panel token: %w", err)
	}
	return entities.PanelCredential{
		Username:  username,
		Password:  password,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(panelSessionTTL),
	}, nil
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
