package cart

import (
	"context"
	"encoding/json"
	"sync"

	"hausly/models"
	"hausly/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists the per-session checkout selections (applied
// coupon, tip, selected address) next to the cart list.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*models.CartSession, error)
	Save(ctx context.Context, sessionID string, sess *models.CartSession) error
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore returns a SessionStore backed by Redis.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Load(ctx context.Context, sessionID string) (*models.CartSession, error) {
	data, err := s.client.Get(ctx, utils.SessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &models.CartSession{}, nil
		}
		return nil, err
	}

	var sess models.CartSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return &models.CartSession{}, nil
	}
	return &sess, nil
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID string, sess *models.CartSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, utils.SessionKeyPrefix+sessionID, data, utils.SessionTTL).Err()
}

// memorySessionStore is an in-memory SessionStore used in tests.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.CartSession
}

// NewMemorySessionStore returns an in-memory SessionStore.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]models.CartSession)}
}

func (s *memorySessionStore) Load(_ context.Context, sessionID string) (*models.CartSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[sessionID]
	return &sess, nil
}

func (s *memorySessionStore) Save(_ context.Context, sessionID string, sess *models.CartSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = *sess
	return nil
}
