package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMercadoPagoNotConfigured = fmt.Errorf("%w: mercado pago access token missing", interfaces.ErrGatewayNotConfigured)

const mercadoPagoCallTimeout = 10 * time.Second

// MercadoPagoGateway drives Checkout Pro: CreateCheckout opens a preference
// whose init point the buyer is redirected to, and VerifyEvent authenticates
// webhook deliveries and resolves them to the underlying payment.
//
// Credentials come from the settings document on every call so operators can
// rotate the access token without restarting the service.
type MercadoPagoGateway struct {
	settings interfaces.ISettingsRepository
	logger   *zap.Logger
}

var _ interfaces.IWebhookGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(settings interfaces.ISettingsRepository, logger *zap.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{settings: settings, logger: logger}
}

func (g *MercadoPagoGateway) Method() entities.PaymentMethod {
	return entities.PaymentMethodMercadoPago
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, service entities.Service, invoice entities.Invoice) (entities.CheckoutSession, error) {
	cfg, err := g.sdkConfig(ctx)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	mpSettings, err := g.settings.Get(ctx)
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, mercadoPagoCallTimeout)
	defer cancel()

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:        service.PlanID,
				Title:     service.PlanName,
				Quantity:  1,
				UnitPrice: invoice.Amount,
			},
		},
		ExternalReference: service.ID,
		NotificationURL:   mpSettings.MercadoPago.NotificationURL,
		Metadata: map[string]any{
			"user_id":    service.OwnerUserID,
			"plan_id":    service.PlanID,
			"service_id": service.ID,
		},
	}
	if back := mpSettings.MercadoPago.BackURL; back != "" {
		req.BackURLs = &preference.BackURLsRequest{Success: back, Pending: back, Failure: back}
	}

	g.logger.Info("mercadopago checkout start",
		zap.String("service_id", service.ID),
		zap.String("invoice_id", invoice.ID))

	resp, err := preference.NewClient(cfg).Create(ctx, req)
	if err != nil {
		g.logger.Error("mercadopago preference create failed",
			zap.String("service_id", service.ID), zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("mercado pago preference: %w", err)
	}

	g.logger.Info("mercadopago checkout created",
		zap.String("service_id", service.ID),
		zap.String("preference_id", resp.ID))

	return entities.CheckoutSession{Reference: resp.ID, URL: resp.InitPoint}, nil
}

// VerifyEvent checks the x-signature header against the manifest Mercado
// Pago signs (data.id, the x-request-id header and the ts component), then
// fetches the referenced payment: the notification body itself carries no
// status or metadata.
func (g *MercadoPagoGateway) VerifyEvent(ctx context.Context, payload []byte, sig entities.WebhookSignature) (entities.GatewayEvent, error) {
	mpSettings, err := g.settings.Get(ctx)
	if err != nil {
		return entities.GatewayEvent{}, err
	}
	secret := mpSettings.MercadoPago.WebhookSecret
	if secret == "" {
		return entities.GatewayEvent{}, ErrMercadoPagoNotConfigured
	}

	var body struct {
		Type string `json:"type"`
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return entities.GatewayEvent{}, fmt.Errorf("%w: malformed notification body", interfaces.ErrBadSignature)
	}

	ts, v1, err := parseXSignature(sig.Header)
	if err != nil {
		return entities.GatewayEvent{}, fmt.Errorf("%w: %v", interfaces.ErrBadSignature, err)
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", strings.ToLower(body.Data.ID), sig.RequestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(v1)) {
		return entities.GatewayEvent{}, interfaces.ErrBadSignature
	}

	if body.Type != "payment" {
		return entities.GatewayEvent{Type: body.Type}, nil
	}

	paymentID, err := strconv.Atoi(body.Data.ID)
	if err != nil {
		g.logger.Warn("mercadopago notification with non-numeric payment id",
			zap.String("data_id", body.Data.ID))
		return entities.GatewayEvent{Type: body.Type}, nil
	}

	cfg, err := g.sdkConfig(ctx)
	if err != nil {
		return entities.GatewayEvent{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, mercadoPagoCallTimeout)
	defer cancel()

	resp, err := payment.NewClient(cfg).Get(ctx, paymentID)
	if err != nil {
		g.logger.Error("mercadopago payment fetch failed",
			zap.Int("payment_id", paymentID), zap.Error(err))
		return entities.GatewayEvent{}, fmt.Errorf("mercado pago payment fetch: %w", err)
	}

	event := entities.GatewayEvent{
		Type:      "payment." + resp.Status,
		Captured:  resp.Status == "approved",
		ServiceID: metadataString(resp.Metadata, "service_id"),
		UserID:    metadataString(resp.Metadata, "user_id"),
		PlanID:    metadataString(resp.Metadata, "plan_id"),
		Reference: strconv.Itoa(resp.ID),
	}
	if event.ServiceID == "" {
		event.ServiceID = resp.ExternalReference
	}
	return event, nil
}

func (g *MercadoPagoGateway) sdkConfig(ctx context.Context) (*config.Config, error) {
	mpSettings, err := g.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	token := mpSettings.MercadoPago.AccessToken
	if token == "" {
		return nil, ErrMercadoPagoNotConfigured
	}
	return config.New(token)
}

// parseXSignature splits "ts=...,v1=..." into its two components.
func parseXSignature(header string) (ts, v1 string, err error) {
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	if ts == "" || v1 == "" {
		return "", "", errors.New("x-signature header missing ts or v1")
	}
	return ts, v1, nil
}

func metadataString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	return strings.TrimSpace(s)
}
