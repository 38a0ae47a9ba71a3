package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront/internal/config"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Connector открывает новый пул соединений.
type Connector func(ctx context.Context) (*sqlx.DB, error)

// NewConnector собирает Connector из конфига. Пул ограничен cfg.PoolSize соединениями.
func NewConnector(cfg config.Postgres) Connector {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	return func(ctx context.Context) (*sqlx.DB, error) {
		db, err := sqlx.Open(cfg.Driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %w", err)
		}

		db.SetMaxOpenConns(cfg.PoolSize)
		db.SetMaxIdleConns(cfg.PoolSize)
		if cfg.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}

		if err = db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping db: %w", err)
		}

		return db, nil
	}
}

func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

func IsCheckViolation(err error) bool {
	return hasCode(err, codeCheckViolation)
}

// hasCode понимает ошибки обоих драйверов: lib/pq и pgx.
func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
