package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidLabel       = errors.New("invalid subdomain label")
	ErrAlreadyTaken       = errors.New("subdomain already taken")
	ErrNotConfigured      = errors.New("platform setting missing")
	ErrProvisioningFailed = errors.New("subdomain provisioning failed")
	ErrDependencyTimeout  = errors.New("dependency timed out")
)

// Labels are 3-30 chars, lowercase alphanumerics with internal hyphens.
var labelPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,28}[a-z0-9]$`)

// ISubdomainUseCase claims hostnames under the platform root domain and
// drives the external provisioning API.

type ISubdomainUseCase interface {
	Provision(ctx context.Context, userID, label, serviceID string) (entities.Subdomain, error)
	ListSubdomains(ctx context.Context, userID string) ([]entities.Subdomain, error)
}

type SubdomainUseCase struct {
	subdomainRepo interfaces.ISubdomainRepository
	serviceRepo   interfaces.IServiceRepository
	settingsRepo  interfaces.ISettingsRepository
	userRepo      interfaces.IUserRepository
	provisioner   interfaces.IProvisionerClient
	credStore     interfaces.ICredentialStore
	mailer        interfaces.IMailer
	logger        *zap.Logger
}

var _ ISubdomainUseCase = (*SubdomainUseCase)(nil)

func NewSubdomainUseCase(
	subdomainRepo interfaces.ISubdomainRepository,
	serviceRepo interfaces.IServiceRepository,
	settingsRepo interfaces.ISettingsRepository,
	userRepo interfaces.IUserRepository,
	provisioner interfaces.IProvisionerClient,
	credStore interfaces.ICredentialStore,
	mailer interfaces.IMailer,
	logger *zap.Logger,
) *SubdomainUseCase {
	return &SubdomainUseCase{
		subdomainRepo: subdomainRepo,
		serviceRepo:   serviceRepo,
		settingsRepo:  settingsRepo,
		userRepo:      userRepo,
		provisioner:   provisioner,
		credStore:     credStore,
		mailer:        mailer,
		logger:        logger,
	}
}

// Provision claims label under the platform root domain, creates the site
// through the external provisioning API, and records the reservation.
//
// serviceID is optional; when present the subdomain is bound to that service,
// the service goes active with panel coordinates attached, and a credential
// bundle lands in the side channel.
//
// Ordering: the label is validated before anything else, the uniqueness
// pre-check keeps the external call behind the friendly path, and the final
// conditional put decides races. The loser of a race gets ErrAlreadyTaken
// even though its external call succeeded.
func (u *SubdomainUseCase) Provision(ctx context.Context, userID, label, serviceID string) (entities.Subdomain, error) {
	label = strings.TrimSpace(label)
	if !labelPattern.MatchString(label) {
		return entities.Subdomain{}, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Subdomain{}, fmt.Errorf("%w: user id is required", ErrInvalidRequest)
	}
	serviceID = strings.TrimSpace(serviceID)

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return entities.Subdomain{}, err
	}
	if settings.RootDomain == "" {
		return entities.Subdomain{}, fmt.Errorf("%w: root domain", ErrNotConfigured)
	}
	fqdn := label + "." + settings.RootDomain

	existing, err := u.subdomainRepo.GetByFQDN(ctx, fqdn)
	if err != nil {
		return entities.Subdomain{}, err
	}
	if existing.ID != "" {
		return entities.Subdomain{}, fmt.Errorf("%w: %s", ErrAlreadyTaken, fqdn)
	}

	var svc entities.Service
	if serviceID != "" {
		svc, err = u.serviceRepo.GetByID(ctx, serviceID)
		if err != nil {
			return entities.Subdomain{}, err
		}
		if svc.ID == "" || svc.OwnerUserID != userID {
			return entities.Subdomain{}, ErrServiceNotFound
		}
		bound, err := u.subdomainRepo.GetByServiceID(ctx, serviceID)
		if err != nil {
			return entities.Subdomain{}, err
		}
		if bound.ID != "" {
			return entities.Subdomain{}, fmt.Errorf("%w: service %s already has %s", ErrAlreadyTaken, serviceID, bound.FQDN)
		}
	}

	if settings.Provisioning.BaseURL == "" {
		return entities.Subdomain{}, fmt.Errorf("%w: provisioning api", ErrNotConfigured)
	}
	if err := u.provisioner.CreateSite(ctx, settings.Provisioning, label, settings.RootDomain); err != nil {
		if errors.Is(err, interfaces.ErrProvisionerUnavailable) || isDependencyTimeout(err) {
			return entities.Subdomain{}, fmt.Errorf("%w: %v", ErrDependencyTimeout, err)
		}
		return entities.Subdomain{}, fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
	}

	created, err := u.subdomainRepo.Create(ctx, entities.Subdomain{
		ID:          uuid.NewString(),
		FQDN:        fqdn,
		Label:       label,
		OwnerUserID: userID,
		ServiceID:   serviceID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrSubdomainExists) {
			return entities.Subdomain{}, fmt.Errorf("%w: %s", ErrAlreadyTaken, fqdn)
		}
		return entities.Subdomain{}, fmt.Errorf("failed to record subdomain: %w", err)
	}

	u.logger.Info("subdomain provisioned",
		zap.String("fqdn", fqdn),
		zap.String("user_id", userID),
		zap.String("service_id", serviceID))

	if serviceID != "" {
		if err := u.attachToService(ctx, svc, created); err != nil {
			return entities.Subdomain{}, err
		}
	}
	return created, nil
}

func (u *SubdomainUseCase) ListSubdomains(ctx context.Context, userID string) ([]entities.Subdomain, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidRequest)
	}
	return u.subdomainRepo.ListByOwnerID(ctx, userID)
}

// attachToService binds the fresh subdomain to its service: panel username
// on the record, status active, credential bundle in the side channel, and
// the provisioning mail. Side-channel and mail failures degrade to warnings;
// the user can re-issue a panel session at any time.
func (u *SubdomainUseCase) attachToService(ctx context.Context, svc entities.Service, sd entities.Subdomain) error {
	username := sd.Label
	if _, err := u.serviceRepo.UpdateProvisioned(ctx, svc.ID, sd.FQDN, username); err != nil {
		return fmt.Errorf("failed to attach subdomain to service %s: %w", svc.ID, err)
	}

	cred, err := newPanelCredential(username)
	if err != nil {
		u.logger.Warn("panel credential generation failed",
			zap.String("service_id", svc.ID),
			zap.Error(err))
		return nil
	}
	if err := u.credStore.Put(ctx, cred); err != nil {
		u.logger.Warn("panel credential store failed",
			zap.String("username", username),
			zap.Error(err))
	}

	user, err := u.userRepo.GetByID(ctx, svc.OwnerUserID)
	if err != nil || user.Email == "" {
		u.logger.Warn("provisioning mail skipped, owner profile unavailable",
			zap.String("user_id", svc.OwnerUserID),
			zap.Error(err))
		return nil
	}
	mail := entities.Mail{
		To:      user.Email,
		Subject: "Your site is ready",
		Type:    entities.MailTypeProvisioned,
		Payload: map[string]string{
			"subdomain":      sd.FQDN,
			"panel_username": username,
		},
	}
	if err := u.mailer.Send(ctx, mail); err != nil {
		u.logger.Warn("provisioning mail failed",
			zap.String("to", user.Email),
			zap.Error(err))
	}
	return nil
}

// isDependencyTimeout classifies errors from external calls that exhausted
// their deadline, as opposed to calls that completed with a failure.
func isDependencyTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
