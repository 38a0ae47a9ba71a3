package cache

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func set(c *LRUCache[string], key, value string) {
	c.SetIf(key, value, func(string, bool) bool { return true })
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[string], t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], t *testing.T) {
				set(c, "a", "1")
				if v, ok := c.Get("a"); !ok || v != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[string], t *testing.T) {
				set(c, "a", "1")
				time.Sleep(time.Millisecond * 60)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], t *testing.T) {
				set(c, "a", "1")
				set(c, "b", "2")
				set(c, "c", "3")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get("b"); !ok || v != "2" {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || v != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[string], t *testing.T) {
				set(c, "a", "1")
				time.Sleep(time.Millisecond * 30)
				set(c, "a", "2")
				time.Sleep(time.Millisecond * 30)
				if v, ok := c.Get("a"); !ok || v != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "SetIf respects predicate",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], t *testing.T) {
				onlyEmpty := func(_ string, found bool) bool { return !found }

				if _, ok := c.SetIf("a", "1", onlyEmpty); !ok {
					t.Errorf("expected first SetIf to apply")
				}
				if cur, ok := c.SetIf("a", "2", onlyEmpty); ok || cur != "1" {
					t.Errorf("expected second SetIf to be rejected, got cur=%v ok=%v", cur, ok)
				}
			},
		},
		{
			name:     "janitor removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[string], t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				c.Start(ctx)

				set(c, "a", "1")
				time.Sleep(time.Millisecond * 60)

				c.cleanup()

				if len(c.cache) != 0 {
					t.Errorf("expected janitor cleanup to remove expired key")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache[string](tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}

func TestLRUCache_ZeroCapacityNeverEvicts(t *testing.T) {
	c := NewLRUCache[string](0, time.Minute)
	for i := range 1000 {
		set(c, strconv.Itoa(i), "v")
	}

	v, ok := c.Get("0")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Len(t, c.cache, 1000)
}

func TestLRUCache_ConcurrentSetIf(t *testing.T) {
	c := NewLRUCache[int](10, time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := c.SetIf("key", i, func(_ int, found bool) bool { return !found })
			if ok {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, applied)
}
