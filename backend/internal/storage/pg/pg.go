package pg

import (
	"context"
	"database/sql"
	"embed"
	"time"

	"github.com/itchan-dev/kanban/shared/config"
	"github.com/itchan-dev/kanban/shared/logger"
	sharedpg "github.com/itchan-dev/kanban/shared/storage/pg"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Storage struct {
	db *sql.DB
}

// New connects to postgres and brings the schema up to date.
func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to database", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	if err := sharedpg.Migrate(db, migrations, "migrations"); err != nil {
		db.Close()
		return nil, err
	}
	logger.Log.Info("successfully connected to database")
	return &Storage{db: db}, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withTx is a shorthand over the shared helper bound to this storage's pool.
func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return sharedpg.WithTx(ctx, s.db, fn)
}

// nullString maps an optional text field onto a nullable column.
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
