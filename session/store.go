// File: mezbaan/session/store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mezbaan/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const SessionPrefix = "session:"

// Credentials is what the store keeps per session: the bearer token the
// backend issued at login and the user profile that came with it.
type Credentials struct {
	Token         string             `json:"token"`
	User          models.UserProfile `json:"user"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// Store is the session-scoped credential store, backed by Redis with a TTL so
// abandoned sessions expire on their own.
type Store struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{Client: client, TTL: ttl}
}

// Save persists credentials under a fresh session id and returns it.
func (s *Store) Save(ctx context.Context, creds Credentials) (string, error) {
	sessionID := uuid.New().String()
	if err := s.Update(ctx, sessionID, creds); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Update overwrites the credentials for an existing session, refreshing the TTL.
func (s *Store) Update(ctx context.Context, sessionID string, creds Credentials) error {
	creds.LastUpdatedAt = time.Now()
	if creds.CreatedAt.IsZero() {
		creds.CreatedAt = creds.LastUpdatedAt
	}
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal session credentials: %w", err)
	}
	if err := s.Client.Set(ctx, SessionPrefix+sessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save session credentials: %w", err)
	}
	return nil
}

// Get retrieves the credentials for a session. A missing or expired session
// returns redis.Nil.
func (s *Store) Get(ctx context.Context, sessionID string) (*Credentials, error) {
	data, err := s.Client.Get(ctx, SessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var creds Credentials
	if err := json.Unmarshal([]byte(data), &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session credentials: %w", err)
	}
	return &creds, nil
}

// Delete removes a session from the store.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, SessionPrefix+sessionID).Err()
}

// IsMissing reports whether a Get error means the session does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, redis.Nil)
}
