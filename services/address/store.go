package address

import (
	"context"
	"encoding/json"
	"sync"

	"hausly/models"
	"hausly/utils"

	"github.com/go-redis/redis/v8"
)

type redisAddressStore struct {
	client *redis.Client
}

// NewRedisAddressStore returns an AddressStore backed by Redis. Each
// session's book is one JSON array under a fixed key prefix.
func NewRedisAddressStore(client *redis.Client) AddressStore {
	return &redisAddressStore{client: client}
}

func (s *redisAddressStore) Load(ctx context.Context, sessionID string) ([]models.Address, error) {
	data, err := s.client.Get(ctx, utils.AddressKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []models.Address{}, nil
		}
		return nil, err
	}

	var addrs []models.Address
	if err := json.Unmarshal(data, &addrs); err != nil {
		return []models.Address{}, nil
	}
	return addrs, nil
}

func (s *redisAddressStore) Save(ctx context.Context, sessionID string, addrs []models.Address) error {
	data, err := json.Marshal(addrs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, utils.AddressKeyPrefix+sessionID, data, utils.SessionTTL).Err()
}

// memoryAddressStore is an in-memory AddressStore used in tests.
type memoryAddressStore struct {
	mu    sync.Mutex
	books map[string][]models.Address
}

// NewMemoryAddressStore returns an in-memory AddressStore.
func NewMemoryAddressStore() AddressStore {
	return &memoryAddressStore{books: make(map[string][]models.Address)}
}

func (s *memoryAddressStore) Load(_ context.Context, sessionID string) ([]models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	addrs := make([]models.Address, len(s.books[sessionID]))
	copy(addrs, s.books[sessionID])
	return addrs, nil
}

func (s *memoryAddressStore) Save(_ context.Context, sessionID string, addrs []models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := make([]models.Address, len(addrs))
	copy(saved, addrs)
	s.books[sessionID] = saved
	return nil
}
