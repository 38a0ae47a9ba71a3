package session

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	_, ok, err := s.Status(ctx, "ws_CO_1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Register(ctx, "ws_CO_1"))
	status, ok, _ := s.Status(ctx, "ws_CO_1")
	assert.True(t, ok)
	assert.Equal(t, entities.PaymentPending, status)

	current, applied, err := s.Resolve(ctx, "ws_CO_1", entities.PaymentSuccess)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, entities.PaymentSuccess, current)

	// конечный статус не меняется повторным callback'ом
	current, applied, _ = s.Resolve(ctx, "ws_CO_1", entities.PaymentFailed)
	assert.False(t, applied)
	assert.Equal(t, entities.PaymentSuccess, current)

	// и не сбрасывается повторной регистрацией
	require.NoError(t, s.Register(ctx, "ws_CO_1"))
	status, _, _ = s.Status(ctx, "ws_CO_1")
	assert.Equal(t, entities.PaymentSuccess, status)
}

func TestMemoryStore_CallbackBeforeRegister(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	_, applied, _ := s.Resolve(ctx, "ws_CO_2", entities.PaymentCancelled)
	assert.True(t, applied)

	require.NoError(t, s.Register(ctx, "ws_CO_2"))
	status, _, _ := s.Status(ctx, "ws_CO_2")
	assert.Equal(t, entities.PaymentCancelled, status)
}

func TestMemoryStore_ConcurrentCallbacks(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	require.NoError(t, s.Register(ctx, "ws_CO_3"))

	statuses := []entities.PaymentStatus{entities.PaymentSuccess, entities.PaymentFailed, entities.PaymentCancelled}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []entities.PaymentStatus
	)
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func(st entities.PaymentStatus) {
			defer wg.Done()
			if _, applied, _ := s.Resolve(ctx, "ws_CO_3", st); applied {
				mu.Lock()
				winners = append(winners, st)
				mu.Unlock()
			}
		}(statuses[i%len(statuses)])
	}
	wg.Wait()

	require.Len(t, winners, 1)
	status, _, _ := s.Status(ctx, "ws_CO_3")
	assert.Equal(t, winners[0], status)
}

func TestMemoryStore_ResolvedSessionsAreNotEvicted(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	_, applied, _ := s.Resolve(ctx, "ws_CO_first", entities.PaymentSuccess)
	require.True(t, applied)

	for i := range 5000 {
		require.NoError(t, s.Register(ctx, "ws_CO_"+strconv.Itoa(i)))
	}

	// повторная доставка callback'а для давней сессии не применяется
	current, applied, _ := s.Resolve(ctx, "ws_CO_first", entities.PaymentFailed)
	assert.False(t, applied)
	assert.Equal(t, entities.PaymentSuccess, current)
}
