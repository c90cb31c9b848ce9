package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"

	"github.com/limbo/babiecloud/migrations"
	"github.com/limbo/babiecloud/pkg/cleanup"
)

// NewPool opens a pgx pool shared by every repository and registers
// its closing as a cleanup job.
func NewPool(ctx context.Context, cfg DBConfig, maxConns int32) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, errors.New("parsing pool config error: " + err.Error())
	}
	if maxConns > 0 {
		poolCfg.MaxConns = maxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.New("pinging pgxpool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// Migrate applies the embedded goose migrations.
func Migrate(ctx context.Context, cfg DBConfig) error {
	db, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		return errors.New("opening migration connection error: " + err.Error())
	}
	defer db.Close()
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
