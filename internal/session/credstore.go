package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/uci-sgcd/panel-api/internal/gateway"
	"github.com/uci-sgcd/panel-api/internal/models"
	"github.com/uci-sgcd/panel-api/pkg/config"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
)

// errCorruptSnapshot marks an identity entry that can no longer be decoded.
var errCorruptSnapshot = appErrors.New("CORRUPT_SESSION", 500, "corrupt session snapshot")

// CredentialStore persists the per-session credential triple in Redis. The
// three entries carry distinct lifetimes: the access credential expires in
// about a day, the refresh credential and identity snapshot in about a week.
type CredentialStore struct {
	client *redis.Client
	cfg    config.SessionConfig
	logger *zap.Logger
}

// NewCredentialStore constructs a Redis-backed credential store.
func NewCredentialStore(client *redis.Client, cfg config.SessionConfig, logger *zap.Logger) *CredentialStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CredentialStore{client: client, cfg: cfg, logger: logger}
}

func accessKey(id string) string   { return "session:" + id + ":access" }
func refreshKey(id string) string  { return "session:" + id + ":refresh" }
func identityKey(id string) string { return "session:" + id + ":identity" }

// SaveSession stores the credential triple for a fresh session.
func (s *CredentialStore) SaveSession(ctx context.Context, id string, pair models.TokenPair, identity models.Identity) error {
	snapshot, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity snapshot: %w", err)
	}

	if err := s.client.Set(ctx, accessKey(id), pair.Access, s.cfg.AccessExpiry).Err(); err != nil {
		return fmt.Errorf("store access credential: %w", err)
	}
	if err := s.client.Set(ctx, refreshKey(id), pair.Refresh, s.cfg.RefreshExpiry).Err(); err != nil {
		return fmt.Errorf("store refresh credential: %w", err)
	}
	if err := s.client.Set(ctx, identityKey(id), snapshot, s.cfg.RefreshExpiry).Err(); err != nil {
		return fmt.Errorf("store identity snapshot: %w", err)
	}
	return nil
}

// Identity loads the persisted identity snapshot. A missing entry yields
// (nil, nil); a corrupt one yields errCorruptSnapshot so the caller can clear
// the session instead of crashing.
func (s *CredentialStore) Identity(ctx context.Context, id string) (*models.Identity, error) {
	raw, err := s.client.Get(ctx, identityKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("read identity snapshot: %w", err)
	}

	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, errCorruptSnapshot
	}
	return &identity, nil
}

// HasAccessCredential reports whether the short-lived access entry survives.
func (s *CredentialStore) HasAccessCredential(ctx context.Context, id string) (bool, error) {
	_, err := s.client.Get(ctx, accessKey(id)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes every entry of the session. Idempotent.
func (s *CredentialStore) Clear(ctx context.Context, id string) error {
	return s.client.Del(ctx, accessKey(id), refreshKey(id), identityKey(id)).Err()
}

// Source returns the gateway credential source bound to one session.
func (s *CredentialStore) Source(id string) gateway.CredentialSource {
	return &sessionCredentials{store: s, id: id}
}

// sessionCredentials adapts the store to the gateway's credential contract.
type sessionCredentials struct {
	store *CredentialStore
	id    string
}

func (c *sessionCredentials) AccessToken(ctx context.Context) (string, error) {
	token, err := c.store.client.Get(ctx, accessKey(c.id)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return token, err
}

func (c *sessionCredentials) RefreshToken(ctx context.Context) (string, error) {
	token, err := c.store.client.Get(ctx, refreshKey(c.id)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return token, err
}

func (c *sessionCredentials) StoreAccessToken(ctx context.Context, token string) error {
	return c.store.client.Set(ctx, accessKey(c.id), token, c.store.cfg.AccessExpiry).Err()
}

func (c *sessionCredentials) Clear(ctx context.Context) error {
	return c.store.Clear(ctx, c.id)
}
