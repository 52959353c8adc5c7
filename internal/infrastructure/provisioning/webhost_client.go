package provisioning

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	provisionCallTimeout = 15 * time.Second
	breakerOpenTimeout   = 30 * time.Second
	breakerInterval      = 60 * time.Second
	breakerTripAfter     = 5
)

type siteResponse struct {
	Status int      `json:"status"`
	Errors []string `json:"errors"`
}

// WebhostClient calls the external API that physically creates the
// subdomain and its directory on the hosting infrastructure.
//
// The host is treated as untrusted and unreliable: every call runs behind
// a circuit breaker tripping on consecutive failures, so a dead host fails
// fast instead of stacking up 15-second timeouts.
type WebhostClient struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[any]
	logger     *zap.Logger
}

var _ interfaces.IProvisionerClient = (*WebhostClient)(nil)

func NewWebhostClient(logger *zap.Logger) *WebhostClient {
	settings := gobreaker.Settings{
		Name:     "provisioner",
		Interval: breakerInterval,
		Timeout:  breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripAfter
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("provisioner breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &WebhostClient{
		httpClient: &http.Client{Timeout: provisionCallTimeout},
		breaker:    gobreaker.NewCircuitBreaker[any](settings),
		logger:     logger,
	}
}

func (c *WebhostClient) CreateSite(ctx context.Context, cfg entities.ProvisioningSettings, label, rootDomain string) error {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.createSite(ctx, cfg, label, rootDomain)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		c.logger.Warn("provisioner call skipped, breaker open", zap.String("label", label))
		return interfaces.ErrProvisionerUnavailable
	}
	return err
}

func (c *WebhostClient) createSite(ctx context.Context, cfg entities.ProvisioningSettings, label, rootDomain string) error {
	ctx, cancel := context.WithTimeout(ctx, provisionCallTimeout)
	defer cancel()

	form := url.Values{}
	form.Set("label", label)
	form.Set("rootDomain", rootDomain)
	form.Set("targetDirectory", cfg.TargetDirectory)
	form.Set("apiKey", cfg.APIKey)

	endpoint := strings.TrimRight(cfg.BaseURL, "/") + "/createsite"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Info("provisioner create site start",
		zap.String("label", label),
		zap.String("root_domain", rootDomain))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("provisioner call failed", zap.String("label", label), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("provisioner returned non-success status",
			zap.String("label", label),
			zap.Int("http_status", resp.StatusCode))
		return fmt.Errorf("provisioning api http status %d", resp.StatusCode)
	}

	var parsed siteResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Error("provisioner response unparseable",
			zap.String("label", label), zap.Error(err))
		return fmt.Errorf("provisioning api malformed response: %w", err)
	}
	if parsed.Status != 1 {
		c.logger.Error("provisioner rejected site",
			zap.String("label", label),
			zap.Int("status", parsed.Status),
			zap.Strings("errors", parsed.Errors))
		return fmt.Errorf("provisioning api status %d: %s", parsed.Status, strings.Join(parsed.Errors, "; "))
	}

	c.logger.Info("provisioner create site success", zap.String("label", label))
	return nil
}
