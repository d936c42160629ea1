package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/binbuddy/tracker/pkg/cleanup"
	"github.com/binbuddy/tracker/pkg/entity"
)

// RedisStore keeps each record as a JSON string under binbuddy:<key>.
// Same contract as PostgresStore; records never expire.
type RedisStore struct {
	client *redis.Client
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisStore(cfg *RedisCfg) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	err := client.Ping(context.Background()).Err()
	if err != nil {
		log.Fatal("error while pinging redis for store: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisStore{
		client: client,
	}
}

func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

func redisKey(key string) string {
	return "binbuddy:" + key
}

func (store *RedisStore) getBlob(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := store.client.Get(ctx, redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.New("reading record " + key + " error: " + err.Error())
	}
	return raw, true, nil
}

func (store *RedisStore) saveBlob(ctx context.Context, key string, value any) error {
	raw, err := sonic.ConfigDefault.Marshal(value)
	if err != nil {
		return errors.New("encoding record " + key + " error: " + err.Error())
	}
	err = store.client.Set(ctx, redisKey(key), raw, 0).Err()
	if err != nil {
		return errors.New("writing record " + key + " error: " + err.Error())
	}
	return nil
}

func (store *RedisStore) GetStats(ctx context.Context) (entity.UserStats, error) {
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

func (store *RedisStore) SaveStats(ctx context.Context, stats entity.UserStats) error {
	return store.saveBlob(ctx, keyStats, stats)
}

func (store *RedisStore) GetLog(ctx context.Context) ([]entity.LogEntry, error) {
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

func (store *RedisStore) AppendLogEntry(ctx context.Context, entry entity.LogEntry) error {
	entries, err := store.GetLog(ctx)
	if err != nil {
		return err
	}
	updated := make([]entity.LogEntry, 0, len(entries)+1)
	updated = append(updated, entry)
	updated = append(updated, entries...)
	return store.saveBlob(ctx, keyLog, updated)
}

func (store *RedisStore) GetAchievements(ctx context.Context) ([]entity.Achievement, error) {
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

func (store *RedisStore) SaveAchievements(ctx context.Context, achievements []entity.Achievement) error {
	return store.saveBlob(ctx, keyAchievements, achievements)
}

func (store *RedisStore) GetSettings(ctx context.Context) (entity.Settings, error) {
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

func (store *RedisStore) SaveSettings(ctx context.Context, settings entity.Settings) error {
	return store.saveBlob(ctx, keySettings, settings)
}

func (store *RedisStore) GetCustomItems(ctx context.Context) ([]entity.TrashItem, error) {
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

func (store *RedisStore) SaveCustomItems(ctx context.Context, items []entity.TrashItem) error {
	return store.saveBlob(ctx, keyCustomItems, items)
}
