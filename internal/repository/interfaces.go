package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/binbuddy/tracker/pkg/entity"
)

// StoreRepositoryI is the persistence contract for the five stored records.
// Reads degrade gracefully: an absent or unparseable record comes back as
// its typed default instead of an error. Only real I/O failures error out.
type StoreRepositoryI interface {
	GetStats(ctx context.Context) (entity.UserStats, error)
	SaveStats(ctx context.Context, stats entity.UserStats) error
	// Returns the log newest-first; empty if nothing is stored
	GetLog(ctx context.Context) ([]entity.LogEntry, error)
	// Prepends entry to the stored log
	AppendLogEntry(ctx context.Context, entry entity.LogEntry) error
	// Returns the full default catalog, all locked, if nothing is stored
	GetAchievements(ctx context.Context) ([]entity.Achievement, error)
	SaveAchievements(ctx context.Context, achievements []entity.Achievement) error
	GetSettings(ctx context.Context) (entity.Settings, error)
	SaveSettings(ctx context.Context, settings entity.Settings) error
	GetCustomItems(ctx context.Context) ([]entity.TrashItem, error)
	SaveCustomItems(ctx context.Context, items []entity.TrashItem) error
}

// Keys of the stored records.
const (
	keyStats        = "stats"
	keyLog          = "log"
	keyAchievements = "achievements"
	keySettings     = "settings"
	keyCustomItems  = "custom_items"
)

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
