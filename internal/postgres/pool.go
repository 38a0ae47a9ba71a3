package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	poolRebuilds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "db_pool",
		Name:      "rebuilds_total",
		Help:      "Number of times the connection pool was (re)created.",
	})

	poolAcquireFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "db_pool",
		Name:      "acquire_failures_total",
		Help:      "Number of acquisitions that failed after all retries.",
	})
)

// Pool выдаёт проверенные соединения. Пул создаётся лениво и сбрасывается
// после любой ошибки получения соединения, следующий вызов строит его заново.
type Pool struct {
	logger         *slog.Logger
	connect        Connector
	retry          utils.RetryConfig
	acquireTimeout time.Duration

	mu sync.Mutex
	db *sqlx.DB
}

// NewPool не подключается к базе, первое соединение открывается в Acquire.
func NewPool(logger *slog.Logger, connect Connector, retry utils.RetryConfig, acquireTimeout time.Duration) *Pool {
	return &Pool{
		logger:         logger.With(slog.String("component", "db_pool")),
		connect:        connect,
		retry:          retry,
		acquireTimeout: acquireTimeout,
	}
}

func New(logger *slog.Logger, cfg config.Postgres) *Pool {
	retry := utils.RetryConfig{
		MaxAttempts:  cfg.AcquireAttempts,
		InitialDelay: cfg.AcquireDelay,
		Multiplier:   1,
	}
	return NewPool(logger, NewConnector(cfg), retry, cfg.AcquireTimeout)
}

// Acquire возвращает живое соединение. Вызывающий обязан его закрыть.
// После исчерпания попыток возвращает entities.ErrResourceUnavailable.
func (p *Pool) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	var (
		conn    *sqlx.Conn
		attempt int
	)

	err := utils.Retry(ctx, p.retry, func() error {
		attempt++
		c, err := p.tryAcquire(ctx)
		if err != nil {
			p.logger.WarnContext(ctx, "failed to acquire connection",
				slog.Int("attempt", attempt), slog.Any("error", err))
			return err
		}
		conn = c
		return nil
	})
	if err != nil {
		poolAcquireFailures.Inc()
		return nil, fmt.Errorf("%w: %w", entities.ErrResourceUnavailable, err)
	}
	return conn, nil
}

func (p *Pool) tryAcquire(parent context.Context) (*sqlx.Conn, error) {
	ctx := parent
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, p.acquireTimeout)
		defer cancel()
	}

	db, err := p.current(ctx)
	if err != nil {
		return nil, err
	}

	conn, err := db.Connx(ctx)
	if err != nil {
		p.discard(parent, db)
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		p.discard(parent, db)
		return nil, fmt.Errorf("connection is not alive: %w", err)
	}

	return conn, nil
}

func (p *Pool) current(ctx context.Context) (*sqlx.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	p.logger.InfoContext(ctx, "no pool available, creating")
	db, err := p.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	poolRebuilds.Inc()
	p.db = db
	return db, nil
}

// discard сбрасывает пул, если он всё ещё текущий. Отмена контекста
// вызывающим не считается поломкой пула.
func (p *Pool) discard(ctx context.Context, db *sqlx.DB) {
	if ctx.Err() != nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != db {
		return
	}
	p.db = nil

	if err := db.Close(); err != nil {
		p.logger.Error("failed to close discarded pool", slog.Any("error", err))
	}
}

func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
