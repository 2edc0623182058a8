package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrTokenNotFound is returned by a TokenStore for unknown or expired tokens
var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	ExternalID string    `json:"external_id"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// TokenStore persists refresh tokens
type TokenStore interface {
	Save(ctx context.Context, token string, data *RefreshTokenData, ttl time.Duration) error
	Get(ctx context.Context, token string) (*RefreshTokenData, error)
	Delete(ctx context.Context, token string) error
}

const refreshKeyPrefix = "marina:refresh:"

// RedisTokenStore keeps refresh tokens in redis so they survive restarts and are shared across replicas
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a token store backed by redis
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Save(ctx context.Context, token string, data *RefreshTokenData, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode refresh token: %w", err)
	}
	if err := s.client.Set(ctx, refreshKeyPrefix+token, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Get(ctx context.Context, token string) (*RefreshTokenData, error) {
	raw, err := s.client.Get(ctx, refreshKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}

	var data RefreshTokenData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode refresh token: %w", err)
	}
	return &data, nil
}

func (s *RedisTokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, refreshKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// MemoryTokenStore is the single-process fallback used when redis is not configured
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]*RefreshTokenData
	now    func() time.Time
}

// NewMemoryTokenStore creates an in-memory token store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]*RefreshTokenData), now: time.Now}
}

func (s *MemoryTokenStore) Save(_ context.Context, token string, data *RefreshTokenData, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = data
	return nil
}

func (s *MemoryTokenStore) Get(_ context.Context, token string) (*RefreshTokenData, error) {
	s.mu.RLock()
	data, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrTokenNotFound
	}
	if s.now().After(data.ExpiresAt) {
		s.mu.Lock()
		delete(s.tokens, token)
		s.mu.Unlock()
		return nil, ErrTokenNotFound
	}
	return data, nil
}

func (s *MemoryTokenStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
