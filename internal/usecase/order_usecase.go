package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrServiceNotFound = errors.New("service not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
)

const invoiceDueDays = 7

// IOrderUseCase encapsulates the order lifecycle: placement under the
// restriction policy, checkout-session creation, owner-scoped reads and the
// administrative status override.

type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, userID, planID string, method entities.PaymentMethod) (entities.Service, error)
	CreateCheckout(ctx context.Context, userID, serviceID string) (entities.CheckoutSession, error)
	GetService(ctx context.Context, userID, serviceID string) (entities.Service, error)
	ListServices(ctx context.Context, userID string) ([]entities.Service, error)
	GetInvoice(ctx context.Context, userID, serviceID string) (entities.Invoice, error)
	OverrideServiceStatus(ctx context.Context, serviceID string, status entities.ServiceStatus) (entities.Service, error)
}

type OrderUseCase struct {
	serviceRepo  interfaces.IServiceRepository
	invoiceRepo  interfaces.IInvoiceRepository
	planRepo     interfaces.IPlanRepository
	userRepo     interfaces.IUserRepository
	settingsRepo interfaces.ISettingsRepository
	policy       *FreeOrderPolicy
	gateways     map[entities.PaymentMethod]interfaces.IPaymentGateway
	mailer       interfaces.IMailer
	logger       *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	serviceRepo interfaces.IServiceRepository,
	invoiceRepo interfaces.IInvoiceRepository,
	planRepo interfaces.IPlanRepository,
	userRepo interfaces.IUserRepository,
	settingsRepo interfaces.ISettingsRepository,
	policy *FreeOrderPolicy,
	gateways map[entities.PaymentMethod]interfaces.IPaymentGateway,
	mailer interfaces.IMailer,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		serviceRepo:  serviceRepo,
		invoiceRepo:  invoiceRepo,
		planRepo:     planRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		policy:       policy,
		gateways:     gateways,
		mailer:       mailer,
		logger:       logger,
	}
}

// PlaceOrder creates the Service and its Invoice for one plan purchase.
//
// Zero-price plans activate immediately with the invoice settled; paid plans
// start pending/unpaid and wait for the reconciler. Plan name and price are
// snapshotted onto both records, so catalog edits never touch past orders.
//
// The two writes are sequential: a failure between them leaves a service
// without an invoice, recovered administratively.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, userID, planID string, method entities.PaymentMethod) (entities.Service, error) {
	userID = strings.TrimSpace(userID)
	planID = strings.TrimSpace(planID)
	if userID == "" {
		return entities.Service{}, fmt.Errorf("%w: user id is required", ErrInvalidRequest)
	}
	if planID == "" {
		return entities.Service{}, fmt.Errorf("%w: plan_id is required", ErrInvalidRequest)
	}
	if !entities.ValidPaymentMethod(method) {
		return entities.Service{}, fmt.Errorf("%w: unsupported payment_method %q", ErrInvalidRequest, method)
	}

	plan, err := u.planRepo.GetByID(ctx, planID)
	if err != nil {
		return entities.Service{}, err
	}
	if plan.ID == "" {
		return entities.Service{}, fmt.Errorf("%w: unknown plan %q", ErrInvalidRequest, planID)
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entities.Service{}, err
	}
	if user.ID == "" {
		return entities.Service{}, fmt.Errorf("%w: unknown user %q", ErrInvalidRequest, userID)
	}

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return entities.Service{}, err
	}

	if err := u.policy.AllowFreeOrder(ctx, userID, plan.Price, settings); err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	status := entities.ServiceStatusPending
	if plan.Free() {
		status = entities.ServiceStatusActive
	}

	created, err := u.serviceRepo.Create(ctx, entities.Service{
		ID:            uuid.NewString(),
		OwnerUserID:   userID,
		PlanID:        plan.ID,
		PlanName:      plan.Name,
		Price:         plan.Price,
		PaymentMethod: method,
		Status:        status,
		OrderDate:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return entities.Service{}, fmt.Errorf("failed to create service: %w", err)
	}

	inv := entities.Invoice{
		ID:          uuid.NewString(),
		ServiceID:   created.ID,
		OwnerUserID: userID,
		Amount:      plan.Price,
		Status:      entities.InvoiceStatusUnpaid,
		InvoiceDate: now,
		DueDate:     now.AddDate(0, 0, invoiceDueDays),
		Company: entities.InvoiceCompany{
			Name:    settings.Company.Name,
			Address: settings.Company.Address,
			TaxID:   settings.Company.TaxID,
			Email:   settings.Company.Email,
		},
		Customer: entities.InvoiceCustomer{
			Name:    user.Name,
			Email:   user.Email,
			Address: user.Address,
		},
	}
	if plan.Free() {
		inv.Status = entities.InvoiceStatusPaid
		inv.PaidAt = &now
	}
	if _, err := u.invoiceRepo.Create(ctx, inv); err != nil {
		u.logger.Error("invoice creation failed after service commit",
			zap.String("service_id", created.ID),
			zap.Error(err))
		return entities.Service{}, fmt.Errorf("failed to create invoice for service %s: %w", created.ID, err)
	}

	u.sendMail(ctx, entities.Mail{
		To:      user.Email,
		Subject: "Order received",
		Type:    entities.MailTypeOrderPlaced,
		Payload: map[string]string{
			"service_id": created.ID,
			"plan_name":  plan.Name,
			"amount":     fmt.Sprintf("%.2f", plan.Price),
			"due_date":   inv.DueDate.Format("2006-01-02"),
		},
	})

	u.logger.Info("order placed",
		zap.String("service_id", created.ID),
		zap.String("user_id", userID),
		zap.String("plan_id", plan.ID),
		zap.String("status", string(created.Status)))
	return created, nil
}

// CreateCheckout opens a gateway checkout session for the service's unpaid
// invoice. It never mutates service or invoice state; transitions belong to
// the payment reconciler.
func (u *OrderUseCase) CreateCheckout(ctx context.Context, userID, serviceID string) (entities.CheckoutSession, error) {
	userID = strings.TrimSpace(userID)
	serviceID = strings.TrimSpace(serviceID)
	if userID == "" || serviceID == "" {
		return entities.CheckoutSession{}, fmt.Errorf("%w: user id and service id are required", ErrInvalidRequest)
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if svc.ID == "" || svc.OwnerUserID != userID {
		return entities.CheckoutSession{}, ErrServiceNotFound
	}

	inv, err := u.invoiceRepo.GetByServiceID(ctx, serviceID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if inv.ID == "" {
		return entities.CheckoutSession{}, ErrInvoiceNotFound
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.CheckoutSession{}, fmt.Errorf("%w: invoice %s is already settled", ErrInvalidRequest, inv.ID)
	}

	gw, ok := u.gateways[svc.PaymentMethod]
	if !ok {
		return entities.CheckoutSession{}, fmt.Errorf("no gateway registered for payment method %q", svc.PaymentMethod)
	}

	session, err := gw.CreateCheckout(ctx, svc, inv)
	if err != nil {
		if errors.Is(err, interfaces.ErrGatewayNotConfigured) {
			return entities.CheckoutSession{}, fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
		if isDependencyTimeout(err) {
			return entities.CheckoutSession{}, fmt.Errorf("%w: %v", ErrDependencyTimeout, err)
		}
		return entities.CheckoutSession{}, fmt.Errorf("failed to create checkout session: %w", err)
	}

	u.logger.Info("checkout session created",
		zap.String("service_id", serviceID),
		zap.String("method", string(svc.PaymentMethod)),
		zap.Bool("manual", session.Manual))
	return session, nil
}

func (u *OrderUseCase) GetService(ctx context.Context, userID, serviceID string) (entities.Service, error) {
	userID = strings.TrimSpace(userID)
	serviceID = strings.TrimSpace(serviceID)
	if userID == "" || serviceID == "" {
		return entities.Service{}, fmt.Errorf("%w: user id and service id are required", ErrInvalidRequest)
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" || svc.OwnerUserID != userID {
		return entities.Service{}, ErrServiceNotFound
	}
	return svc, nil
}

func (u *OrderUseCase) ListServices(ctx context.Context, userID string) ([]entities.Service, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidRequest)
	}
	return u.serviceRepo.ListByOwnerID(ctx, userID)
}

func (u *OrderUseCase) GetInvoice(ctx context.Context, userID, serviceID string) (entities.Invoice, error) {
	if _, err := u.GetService(ctx, userID, serviceID); err != nil {
		return entities.Invoice{}, err
	}

	inv, err := u.invoiceRepo.GetByServiceID(ctx, strings.TrimSpace(serviceID))
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// OverrideServiceStatus is the administrative escape hatch. It can race
// the reconciler; last writer wins.
func (u *OrderUseCase) OverrideServiceStatus(ctx context.Context, serviceID string, status entities.ServiceStatus) (entities.Service, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Service{}, fmt.Errorf("%w: service id is required", ErrInvalidRequest)
	}
	if !entities.ValidServiceStatus(status) {
		return entities.Service{}, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, status)
	}

	updated, err := u.serviceRepo.UpdateStatus(ctx, serviceID, status)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	u.logger.Info("service status overridden",
		zap.String("service_id", serviceID),
		zap.String("status", string(status)))
	return updated, nil
}

func (u *OrderUseCase) sendMail(ctx context.Context, mail entities.Mail) {
	if err := u.mailer.Send(ctx, mail); err != nil {
		u.logger.Warn("notification mail failed",
			zap.String("type", mail.Type),
			zap.String("to", mail.To),
			zap.Error(err))
	}
}
