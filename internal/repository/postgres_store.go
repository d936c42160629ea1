package repository

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/binbuddy/tracker/pkg/cleanup"
	"github.com/binbuddy/tracker/pkg/entity"
)

// PostgresStore keeps each record as a jsonb blob in a single key/value
// table. One row per record, upserted whole on save.
type PostgresStore struct {
	conn PgConnection
}

func NewPostgresStore(cfg DBConfig) *PostgresStore {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for store error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for store: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PostgresStore{
		conn: pool,
	}
}

func NewPostgresStoreWithConn(conn PgConnection) *PostgresStore {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for store: " + err.Error())
	}
	return &PostgresStore{
		conn: conn,
	}
}

// getBlob reads one record. found is false when no row exists.
func (store *PostgresStore) getBlob(ctx context.Context, key string) ([]byte, bool, error) {
	row := store.conn.QueryRow(ctx, `SELECT value FROM store WHERE key = $1;`, key)
	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, errors.New("reading record " + key + " error: " + err.Error())
	}
	return value, true, nil
}

func (store *PostgresStore) saveBlob(ctx context.Context, key string, value any) error {
	raw, err := sonic.ConfigDefault.Marshal(value)
	if err != nil {
		return errors.New("encoding record " + key + " error: " + err.Error())
	}
	_, err = store.conn.Exec(
		ctx,
		`INSERT INTO store (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now();`,
		key,
		raw,
	)
	if err != nil {
		return errors.New("writing record " + key + " error: " + err.Error())
	}
	return nil
}

// decodeOr unmarshals raw into out and reports whether it succeeded. A
// corrupt blob is logged and treated like an absent one, so callers fall
// back to defaults instead of failing the whole load.
func decodeOr(key string, raw []byte, out any) bool {
	if err := sonic.ConfigDefault.Unmarshal(raw, out); err != nil {
		slog.Warn("stored record is corrupt, using defaults", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (store *PostgresStore) GetStats(ctx context.Context) (entity.UserStats, error) {
	raw, found, err := store.getBlob(ctx, keyStats)
	if err != nil {
		return entity.DefaultStats(), err
	}
	stats := entity.DefaultStats()
	if found && !decodeOr(keyStats, raw, &stats) {
		return entity.DefaultStats(), nil
	}
	if stats.ItemsByCategory == nil {
		stats.ItemsByCategory = make(map[string]int)
	}
	if stats.ItemsByDisposal == nil {
		stats.ItemsByDisposal = make(map[string]int)
	}
	return stats, nil
}

func (store *PostgresStore) SaveStats(ctx context.Context, stats entity.UserStats) error {
	return store.saveBlob(ctx, keyStats, stats)
}

func (store *PostgresStore) GetLog(ctx context.Context) ([]entity.LogEntry, error) {
	raw, found, err := store.getBlob(ctx, keyLog)
	if err != nil {
		return []entity.LogEntry{}, err
	}
	entries := []entity.LogEntry{}
	if found && !decodeOr(keyLog, raw, &entries) {
		return []entity.LogEntry{}, nil
	}
	return entries, nil
}

func (store *PostgresStore) AppendLogEntry(ctx context.Context, entry entity.LogEntry) error {
	entries, err := store.GetLog(ctx)
	if err != nil {
		return err
	}
	updated := make([]entity.LogEntry, 0, len(entries)+1)
	updated = append(updated, entry)
	updated = append(updated, entries...)
	return store.saveBlob(ctx, keyLog, updated)
}

func (store *PostgresStore) GetAchievements(ctx context.Context) ([]entity.Achievement, error) {
	raw, found, err := store.getBlob(ctx, keyAchievements)
	if err != nil {
		return entity.DefaultAchievements(), err
	}
	achievements := []entity.Achievement{}
	if !found || !decodeOr(keyAchievements, raw, &achievements) || len(achievements) == 0 {
		return entity.DefaultAchievements(), nil
	}
	return achievements, nil
}

func (store *PostgresStore) SaveAchievements(ctx context.Context, achievements []entity.Achievement) error {
	return store.saveBlob(ctx, keyAchievements, achievements)
}

func (store *PostgresStore) GetSettings(ctx context.Context) (entity.Settings, error) {
	raw, found, err := store.getBlob(ctx, keySettings)
	if err != nil {
		return entity.DefaultSettings(), err
	}
	settings := entity.DefaultSettings()
	if found && !decodeOr(keySettings, raw, &settings) {
		return entity.DefaultSettings(), nil
	}
	return settings, nil
}

func (store *PostgresStore) SaveSettings(ctx context.Context, settings entity.Settings) error {
	return store.saveBlob(ctx, keySettings, settings)
}

func (store *PostgresStore) GetCustomItems(ctx context.Context) ([]entity.TrashItem, error) {
	raw, found, err := store.getBlob(ctx, keyCustomItems)
	if err != nil {
		return []entity.TrashItem{}, err
	}
	items := []entity.TrashItem{}
	if found && !decodeOr(keyCustomItems, raw, &items) {
		return []entity.TrashItem{}, nil
	}
	return items, nil
}

func (store *PostgresStore) SaveCustomItems(ctx context.Context, items []entity.TrashItem) error {
	return store.saveBlob(ctx, keyCustomItems, items)
}
