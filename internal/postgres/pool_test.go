package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тестовый драйвер: соединения открываются всегда, а Ping падает,
// пока pingFailures > 0.
type stubServer struct {
	pingFailures atomic.Int32
}

var (
	stubServersMu sync.Mutex
	stubServers   = map[string]*stubServer{}
)

type stubDriver struct{}

func (stubDriver) Open(name string) (driver.Conn, error) {
	stubServersMu.Lock()
	srv, ok := stubServers[name]
	stubServersMu.Unlock()
	if !ok {
		return nil, errors.New("unknown server")
	}
	return &stubConn{srv: srv}, nil
}

type stubConn struct {
	srv *stubServer
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error)           { return nil, errors.New("not supported") }

func (c *stubConn) Ping(context.Context) error {
	if c.srv.pingFailures.Add(-1) >= 0 {
		return errors.New("server closed the connection unexpectedly")
	}
	return nil
}

func init() {
	sql.Register("pooltest", stubDriver{})
}

func newStubServer(t *testing.T) string {
	t.Helper()
	stubServersMu.Lock()
	defer stubServersMu.Unlock()
	stubServers[t.Name()] = &stubServer{}
	return t.Name()
}

func stubConnector(name string, calls *atomic.Int32) Connector {
	return func(ctx context.Context) (*sqlx.DB, error) {
		calls.Add(1)
		db, err := sqlx.Open("pooltest", name)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(5)
		return db, nil
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPool_RetryBound(t *testing.T) {
	const (
		attempts = 3
		delay    = 30 * time.Millisecond
	)

	var calls []time.Time
	connector := func(ctx context.Context) (*sqlx.DB, error) {
		calls = append(calls, time.Now())
		return nil, errors.New("connection refused")
	}

	retry := utils.RetryConfig{MaxAttempts: attempts, InitialDelay: delay, Multiplier: 1}
	pool := NewPool(discardLogger(), connector, retry, time.Second)

	conn, err := pool.Acquire(context.Background())

	assert.Nil(t, conn)
	assert.ErrorIs(t, err, entities.ErrResourceUnavailable)
	require.Len(t, calls, attempts)
	for i := 1; i < len(calls); i++ {
		assert.GreaterOrEqual(t, calls[i].Sub(calls[i-1]), delay)
	}
}

func TestPool_LazyCreationAndReuse(t *testing.T) {
	name := newStubServer(t)
	var calls atomic.Int32

	pool := NewPool(discardLogger(), stubConnector(name, &calls), utils.RetryConfig{MaxAttempts: 1}, time.Second)
	t.Cleanup(func() { pool.Close() })

	assert.Equal(t, int32(0), calls.Load(), "pool must not connect before first Acquire")

	for range 3 {
		conn, err := pool.Acquire(context.Background())
		require.NoError(t, err)
		require.NoError(t, conn.Close())
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestPool_RebuildsAfterLivenessFailure(t *testing.T) {
	name := newStubServer(t)
	stubServers[name].pingFailures.Store(1)
	var calls atomic.Int32

	retry := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 1}
	pool := NewPool(discardLogger(), stubConnector(name, &calls), retry, time.Second)
	t.Cleanup(func() { pool.Close() })

	conn, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	// первый пул выброшен после неудачного ping, второй создан заново
	assert.Equal(t, int32(2), calls.Load())
}

func TestPool_CallerCancellationKeepsPool(t *testing.T) {
	name := newStubServer(t)
	var calls atomic.Int32

	pool := NewPool(discardLogger(), stubConnector(name, &calls), utils.RetryConfig{MaxAttempts: 1}, time.Second)
	t.Cleanup(func() { pool.Close() })

	conn, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pool.Acquire(ctx)
	assert.ErrorIs(t, err, entities.ErrResourceUnavailable)

	conn, err = pool.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	assert.Equal(t, int32(1), calls.Load())
}

func TestPool_Close(t *testing.T) {
	name := newStubServer(t)
	var calls atomic.Int32

	pool := NewPool(discardLogger(), stubConnector(name, &calls), utils.RetryConfig{MaxAttempts: 1}, time.Second)
	assert.NoError(t, pool.Close())

	conn, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	assert.NoError(t, pool.Close())

	// после Close следующий Acquire снова создаёт пул
	conn, err = pool.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	assert.Equal(t, int32(2), calls.Load())
	assert.NoError(t, pool.Close())
}
