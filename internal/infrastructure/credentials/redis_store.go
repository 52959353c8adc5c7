package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"
)

const (
	credentialKeyPrefix = "panel:cred:"
	putTimeout          = 5 * time.Second
)

// RedisCredentialStore publishes panel credential bundles to Redis, where the
// control panel reads them during login. Keys carry the bundle's own TTL, so
// an expired session needs no cleanup job.
type RedisCredentialStore struct {
	client *redis.Client
	logger *zap.Logger
}

var _ interfaces.ICredentialStore = (*RedisCredentialStore)(nil)

func NewRedisCredentialStore(client *redis.Client, logger *zap.Logger) *RedisCredentialStore {
	return &RedisCredentialStore{client: client, logger: logger}
}

type credentialPayload struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *RedisCredentialStore) Put(ctx context.Context, cred entities.PanelCredential) error {
	ttl := time.Until(cred.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("credential for %q already expired", cred.Username)
	}

	payload, err := json.Marshal(credentialPayload{
		Username:  cred.Username,
		Password:  cred.Password,
		Token:     cred.Token,
		ExpiresAt: cred.ExpiresAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}

	opCtx, cancel := context.WithTimeout(ctx, putTimeout)
	defer cancel()

	key := credentialKeyPrefix + cred.Username
	if err := s.client.Set(opCtx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	s.logger.Debug("panel credential stored",
		zap.String("username", cred.Username),
		zap.Duration("ttl", ttl),
	)
	return nil
}
