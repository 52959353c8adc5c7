package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"
)

const sendTimeout = 5 * time.Second

// RelayMailer posts notification email to the platform's mail relay.
//
// MAIL_RELAY_URL selects the relay; when unset the mailer logs each message
// and drops it, which keeps local development working without SMTP.
type RelayMailer struct {
	relayURL   string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ interfaces.IMailer = (*RelayMailer)(nil)

func NewRelayMailer(logger *zap.Logger) *RelayMailer {
	return &RelayMailer{
		relayURL:   strings.TrimRight(os.Getenv("MAIL_RELAY_URL"), "/"),
		httpClient: &http.Client{Timeout: sendTimeout},
		logger:     logger,
	}
}

func (m *RelayMailer) Send(ctx context.Context, mail entities.Mail) error {
	if m.relayURL == "" {
		m.logger.Info("mail relay not configured, dropping message",
			zap.String("to", mail.To),
			zap.String("type", mail.Type),
		)
		return nil
	}

	body, err := json.Marshal(mail)
	if err != nil {
		return fmt.Errorf("failed to marshal mail: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, m.relayURL+"/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach mail relay: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mail relay returned status %d", resp.StatusCode)
	}

	m.logger.Debug("mail dispatched",
		zap.String("to", mail.To),
		zap.String("type", mail.Type),
	)
	return nil
}
