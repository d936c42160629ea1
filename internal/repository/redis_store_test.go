package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binbuddy/tracker/internal/repository"
	"github.com/binbuddy/tracker/pkg/entity"
)

func TestRedisGetStats(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)
	testCases := []struct {
		Desc            string
		Expected        entity.UserStats
		ExpectedErr     bool
		MockPrepareFunc func()
	}{
		{
			Desc: "stored stats",
			Expected: entity.UserStats{
				TotalPoints:     15,
				TotalItems:      3,
				CurrentStreak:   2,
				LastLogDate:     "2025-06-15",
				MaxStreak:       4,
				ItemsByCategory: map[string]int{"plastic": 3},
				ItemsByDisposal: map[string]int{"recycle": 3},
			},
			MockPrepareFunc: func() {
				mock.ExpectGet("binbuddy:stats").
					SetVal(`{"totalPoints":15,"totalItems":3,"currentStreak":2,"lastLogDate":"2025-06-15","maxStreak":4,"itemsByCategory":{"plastic":3},"itemsByDisposal":{"recycle":3}}`)
			},
		},
		{
			Desc:     "absent key yields defaults",
			Expected: entity.DefaultStats(),
			MockPrepareFunc: func() {
				mock.ExpectGet("binbuddy:stats").RedisNil()
			},
		},
		{
			Desc:     "corrupt blob yields defaults without error",
			Expected: entity.DefaultStats(),
			MockPrepareFunc: func() {
				mock.ExpectGet("binbuddy:stats").SetVal(`{not json`)
			},
		},
		{
			Desc:        "redis error yields defaults and error",
			Expected:    entity.DefaultStats(),
			ExpectedErr: true,
			MockPrepareFunc: func() {
				mock.ExpectGet("binbuddy:stats").SetErr(errors.New("redis down"))
			},
		},
		{
			Desc:     "stored blob with null maps gets usable maps",
			Expected: entity.DefaultStats(),
			MockPrepareFunc: func() {
				mock.ExpectGet("binbuddy:stats").SetVal(`{"totalPoints":0,"totalItems":0}`)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			stats, err := store.GetStats(ctx)
			if tc.ExpectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.Expected, stats)
			assert.NotNil(t, stats.ItemsByCategory)
			assert.NotNil(t, stats.ItemsByDisposal)
		})
	}
}

func TestRedisSaveStats(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)
	stats := entity.DefaultStats()
	raw, err := sonic.ConfigDefault.Marshal(stats)
	require.NoError(t, err)

	t.Run("successful", func(t *testing.T) {
		mock.ExpectSet("binbuddy:stats", raw, 0).SetVal("OK")
		assert.NoError(t, store.SaveStats(context.Background(), stats))
	})

	t.Run("redis error", func(t *testing.T) {
		mock.ExpectSet("binbuddy:stats", raw, 0).SetErr(errors.New("redis down"))
		assert.Error(t, store.SaveStats(context.Background(), stats))
	})
}

func TestRedisAppendLogEntryPrepends(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)

	old := entity.LogEntry{
		ID:         "log-1",
		ItemID:     "plastic-bottle",
		CategoryID: "plastic",
		Disposal:   "recycle",
		Points:     5,
		Timestamp:  time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC),
	}
	entry := entity.LogEntry{
		ID:         "log-2",
		ItemID:     "banana-peel",
		CategoryID: "organic",
		Disposal:   "compost",
		Points:     3,
		Timestamp:  time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
	}
	stored, err := sonic.ConfigDefault.Marshal([]entity.LogEntry{old})
	require.NoError(t, err)
	updated, err := sonic.ConfigDefault.Marshal([]entity.LogEntry{entry, old})
	require.NoError(t, err)

	mock.ExpectGet("binbuddy:log").SetVal(string(stored))
	mock.ExpectSet("binbuddy:log", updated, 0).SetVal("OK")

	require.NoError(t, store.AppendLogEntry(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisGetLog(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)

	t.Run("absent key yields empty log", func(t *testing.T) {
		mock.ExpectGet("binbuddy:log").RedisNil()
		log, err := store.GetLog(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, log)
	})

	t.Run("corrupt blob yields empty log without error", func(t *testing.T) {
		mock.ExpectGet("binbuddy:log").SetVal(`[{]`)
		log, err := store.GetLog(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, log)
	})

	t.Run("stored entries come back newest first", func(t *testing.T) {
		mock.ExpectGet("binbuddy:log").
			SetVal(`[{"id":"log-2","timestamp":"2025-06-15T10:00:00Z"},{"id":"log-1","timestamp":"2025-06-14T10:00:00Z"}]`)
		log, err := store.GetLog(context.Background())
		assert.NoError(t, err)
		require.Len(t, log, 2)
		assert.Equal(t, "log-2", log[0].ID)
		assert.Equal(t, "log-1", log[1].ID)
	})
}

func TestRedisGetAchievements(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)

	t.Run("absent key yields full locked catalog", func(t *testing.T) {
		mock.ExpectGet("binbuddy:achievements").RedisNil()
		achievements, err := store.GetAchievements(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, entity.DefaultAchievements(), achievements)
	})

	t.Run("corrupt blob yields full locked catalog", func(t *testing.T) {
		mock.ExpectGet("binbuddy:achievements").SetVal(`[{]`)
		achievements, err := store.GetAchievements(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, entity.DefaultAchievements(), achievements)
	})

	t.Run("empty blob yields full locked catalog", func(t *testing.T) {
		mock.ExpectGet("binbuddy:achievements").SetVal(`[]`)
		achievements, err := store.GetAchievements(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, entity.DefaultAchievements(), achievements)
	})

	t.Run("stored unlock state survives", func(t *testing.T) {
		mock.ExpectGet("binbuddy:achievements").
			SetVal(`[{"id":"plastic-protector","name":"Plastic Protector","unlocked":true,"unlockedAt":"2025-06-10T08:00:00Z"}]`)
		achievements, err := store.GetAchievements(context.Background())
		assert.NoError(t, err)
		require.Len(t, achievements, 1)
		assert.True(t, achievements[0].Unlocked)
		require.NotNil(t, achievements[0].UnlockedAt)
	})
}

func TestRedisGetSettings(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)

	t.Run("absent key yields defaults", func(t *testing.T) {
		mock.ExpectGet("binbuddy:settings").RedisNil()
		settings, err := store.GetSettings(context.Background())
		assert.NoError(t, err)
		assert.False(t, settings.DarkMode)
	})

	t.Run("stored settings", func(t *testing.T) {
		mock.ExpectGet("binbuddy:settings").SetVal(`{"darkMode":true}`)
		settings, err := store.GetSettings(context.Background())
		assert.NoError(t, err)
		assert.True(t, settings.DarkMode)
	})
}

func TestRedisGetCustomItems(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := repository.NewRedisStoreWithClient(client)

	t.Run("corrupt blob yields empty list without error", func(t *testing.T) {
		mock.ExpectGet("binbuddy:custom_items").SetVal(`{not json`)
		items, err := store.GetCustomItems(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("stored items", func(t *testing.T) {
		mock.ExpectGet("binbuddy:custom_items").
			SetVal(`[{"id":"custom-1","name":"Broken Umbrella","disposal":"trash","points":2}]`)
		items, err := store.GetCustomItems(context.Background())
		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Broken Umbrella", items[0].Name)
	})
}
