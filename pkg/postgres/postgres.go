package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

type DB struct {
	Host        string        `yaml:"host" envconfig:"DB_HOST" default:"localhost"`
	Port        string        `yaml:"port" envconfig:"DB_PORT" default:"5432"`
	Username    string        `yaml:"user" envconfig:"DB_USER" default:"postgres"`
	Password    string        `yaml:"password" envconfig:"DB_PASSWORD" json:"-"`
	NameDB      string        `yaml:"dbname" envconfig:"DB_NAME" default:"biblioteca"`
	SSLMode     string        `yaml:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int32         `yaml:"maxConns" envconfig:"DB_MAX_CONNS" default:"10"`
	IdleTimeout time.Duration `yaml:"idleTimeout" envconfig:"DB_IDLE_TIMEOUT" default:"10s"`
}

func (db *DB) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.Username, db.Password),
		Host:   net.JoinHostPort(db.Host, db.Port),
		Path:   db.NameDB,
	}
	q := u.Query()
	if db.SSLMode != "" {
		q.Set("sslmode", db.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (db *DB) poolConfig() (*pgxpool.Config, error) {
	pcfg, err := pgxpool.ParseConfig(db.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.ParseConfig")
	}
	if db.MaxConns > 0 {
		pcfg.MaxConns = db.MaxConns
	}
	if db.IdleTimeout > 0 {
		pcfg.MaxConnIdleTime = db.IdleTimeout
	}
	return pcfg, nil
}

// NewPostgresDB connects a pool and applies the given goose migrations.
// A nil migrations FS skips the migration step.
func NewPostgresDB(ctx context.Context, cfg *DB, migrations fs.FS) (*pgxpool.Pool, error) {
	pcfg, err := cfg.poolConfig()
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.NewWithConfig")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping")
	}

	if migrations != nil {
		if err = migrate(pool, migrations); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return pool, nil
}

// migrate runs goose over a database/sql handle built from the pool's connection config.
func migrate(pool *pgxpool.Pool, migrations fs.FS) error {
	db := stdlib.OpenDB(*pool.Config().ConnConfig)
	defer db.Close()

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

// TestConnection reports whether a pooled connection can be acquired and pinged.
// The connection is always released.
func TestConnection(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) bool {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		log.Error("database connection failed", zap.Error(err))
		return false
	}
	defer conn.Release()
	if err = conn.Ping(ctx); err != nil {
		log.Error("database ping failed", zap.Error(err))
		return false
	}
	log.Debug("database connected")
	return true
}
