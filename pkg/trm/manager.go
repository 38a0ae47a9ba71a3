package trm

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

// ConnAcquirer - источник соединений, обычно postgres.Pool.
type ConnAcquirer interface {
	Acquire(ctx context.Context) (*sqlx.Conn, error)
}

type Manager interface {
	// Do выполняет callback в одной транзакции. Если в ctx уже есть
	// транзакция, callback присоединяется к ней.
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type txManager struct {
	pool ConnAcquirer
}

func NewManager(pool ConnAcquirer) Manager {
	return &txManager{
		pool: pool,
	}
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(withTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit()
}
