package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/entities"

	rd "github.com/redis/go-redis/v9"
)

// luaResolve переводит сессию в конечный статус, только если она
// отсутствует или ещё в Pending. Возвращает {applied, current}.
const luaResolve = `
local current = redis.call('GET', KEYS[1])
if current and current ~= ARGV[2] then
  return {0, current}
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return {1, ARGV[1]}
`

type redisStore struct {
	rdb *rd.Client
	ttl time.Duration
}

func NewRedisStore(rdb *rd.Client, ttl time.Duration) *redisStore {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func NewRedisClient(cfg config.Redis) *rd.Client {
	return rd.NewClient(&rd.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func (s *redisStore) Register(ctx context.Context, checkoutID string) error {
	if err := s.rdb.SetNX(ctx, StatusKey(checkoutID), string(entities.PaymentPending), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to register payment session: %w", err)
	}
	return nil
}

func (s *redisStore) Resolve(ctx context.Context, checkoutID string, status entities.PaymentStatus) (entities.PaymentStatus, bool, error) {
	res, err := s.rdb.Eval(ctx, luaResolve,
		[]string{StatusKey(checkoutID)},
		string(status), string(entities.PaymentPending), s.ttl.Milliseconds(),
	).Slice()
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve payment session: %w", err)
	}
	if len(res) != 2 {
		return "", false, fmt.Errorf("failed to resolve payment session: unexpected reply %v", res)
	}

	applied, _ := res[0].(int64)
	current, _ := res[1].(string)
	return entities.PaymentStatus(current), applied == 1, nil
}

func (s *redisStore) Status(ctx context.Context, checkoutID string) (entities.PaymentStatus, bool, error) {
	status, err := s.rdb.Get(ctx, StatusKey(checkoutID)).Result()
	if errors.Is(err, rd.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get payment session: %w", err)
	}
	return entities.PaymentStatus(status), true, nil
}

// Start проверяет доступность Redis при запуске приложения.
func (s *redisStore) Start(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

func (s *redisStore) Close() error {
	return s.rdb.Close()
}
