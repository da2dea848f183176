package cart

import (
	"context"
	"encoding/json"
	"sync"

	"hausly/models"
	"hausly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CartStore persists the canonical line-item list. It is the single source
// of truth every mutation reads from and writes back to.
type CartStore interface {
	Load(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Save(ctx context.Context, sessionID string, items []models.CartItem) error
	Clear(ctx context.Context, sessionID string) error
}

type redisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore returns a CartStore backed by Redis. Each session's cart
// is stored as one JSON array under a fixed key prefix.
func NewRedisCartStore(client *redis.Client) CartStore {
	return &redisCartStore{client: client}
}

func (s *redisCartStore) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	data, err := s.client.Get(ctx, utils.CartKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []models.CartItem{}, nil
		}
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt cart record reads as an empty cart rather than an error.
		zap.L().Warn("cart store: discarding unreadable cart record",
			zap.String("sessionID", sessionID), zap.Error(err))
		return []models.CartItem{}, nil
	}
	return items, nil
}

func (s *redisCartStore) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, utils.CartKeyPrefix+sessionID, data, utils.SessionTTL).Err()
}

func (s *redisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, utils.CartKeyPrefix+sessionID).Err()
}

// memoryCartStore is an in-memory CartStore used in tests.
type memoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

// NewMemoryCartStore returns an in-memory CartStore.
func NewMemoryCartStore() CartStore {
	return &memoryCartStore{carts: make(map[string][]models.CartItem)}
}

func (s *memoryCartStore) Load(_ context.Context, sessionID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartItem, len(s.carts[sessionID]))
	copy(items, s.carts[sessionID])
	return items, nil
}

func (s *memoryCartStore) Save(_ context.Context, sessionID string, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := make([]models.CartItem, len(items))
	copy(saved, items)
	s.carts[sessionID] = saved
	return nil
}

func (s *memoryCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
