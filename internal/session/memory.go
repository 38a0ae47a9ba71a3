package session

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/pkg/cache"
)

// memoryStore хранит статусы в процессе; после рестарта они теряются.
// Сессии удаляются только по TTL: вытеснение конечного статуса
// позволило бы повторному callback'у применить его ещё раз.
type memoryStore struct {
	cache *cache.LRUCache[entities.PaymentStatus]
}

func NewMemoryStore(ttl time.Duration) *memoryStore {
	return &memoryStore{
		cache: cache.NewLRUCache[entities.PaymentStatus](0, ttl),
	}
}

// Register не затирает статус, если callback успел прийти раньше.
func (s *memoryStore) Register(_ context.Context, checkoutID string) error {
	s.cache.SetIf(checkoutID, entities.PaymentPending, func(_ entities.PaymentStatus, found bool) bool {
		return !found
	})
	return nil
}

func (s *memoryStore) Resolve(_ context.Context, checkoutID string, status entities.PaymentStatus) (entities.PaymentStatus, bool, error) {
	current, applied := s.cache.SetIf(checkoutID, status, func(current entities.PaymentStatus, found bool) bool {
		return !found || !current.Terminal()
	})
	return current, applied, nil
}

func (s *memoryStore) Status(_ context.Context, checkoutID string) (entities.PaymentStatus, bool, error) {
	status, ok := s.cache.Get(checkoutID)
	return status, ok, nil
}

// Start запускает очистку истёкших сессий.
func (s *memoryStore) Start(ctx context.Context) error {
	return s.cache.Start(ctx)
}
