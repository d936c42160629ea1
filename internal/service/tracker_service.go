package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	errorvalues "github.com/binbuddy/tracker/internal/error_values"
	"github.com/binbuddy/tracker/internal/repository"
	"github.com/binbuddy/tracker/internal/tracker"
	"github.com/binbuddy/tracker/pkg/entity"
)

// TrackerService is the only owner of the in-memory stats, log, achievement
// and settings snapshot. Handlers run on separate goroutines, so the
// snapshot is mutex-guarded even though log operations are rare.
type TrackerService struct {
	repo    repository.StoreRepositoryI
	catalog CatalogI
	now     func() time.Time

	mu           sync.Mutex
	initialized  bool
	stats        entity.UserStats
	log          []entity.LogEntry
	achievements []entity.Achievement
	settings     entity.Settings
	customItems  []entity.TrashItem
}

func NewTrackerService(repo repository.StoreRepositoryI, catalog CatalogI) *TrackerService {
	return NewTrackerServiceWithClock(repo, catalog, time.Now)
}

func NewTrackerServiceWithClock(repo repository.StoreRepositoryI, catalog CatalogI, now func() time.Time) *TrackerService {
	if repo == nil || catalog == nil {
		log.Fatal("on tracker service provided nil repo or catalog")
	}
	return &TrackerService{
		repo:    repo,
		catalog: catalog,
		now:     now,
	}
}

// Initialize loads the five stored records concurrently, applies the
// load-time streak adjustment and re-evaluates achievements against the
// full log. This is the only place the current streak may go down.
func (serv *TrackerService) Initialize(ctx context.Context) error {
	var (
		stats        entity.UserStats
		entries      []entity.LogEntry
		achievements []entity.Achievement
		settings     entity.Settings
		customItems  []entity.TrashItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = serv.repo.GetStats(gctx)
		return loadedOrDefault("stats", err)
	})
	g.Go(func() error {
		var err error
		entries, err = serv.repo.GetLog(gctx)
		return loadedOrDefault("log", err)
	})
	g.Go(func() error {
		var err error
		achievements, err = serv.repo.GetAchievements(gctx)
		return loadedOrDefault("achievements", err)
	})
	g.Go(func() error {
		var err error
		settings, err = serv.repo.GetSettings(gctx)
		return loadedOrDefault("settings", err)
	})
	g.Go(func() error {
		var err error
		customItems, err = serv.repo.GetCustomItems(gctx)
		return loadedOrDefault("custom_items", err)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	now := serv.now()
	stats.CurrentStreak = tracker.StreakOnLoad(stats.LastLogDate, stats.CurrentStreak, now)
	updated, unlocked := tracker.EvaluateAchievements(stats, entries, achievements, now)
	if len(unlocked) > 0 {
		// Best effort: re-evaluation converges on the next load anyway.
		if err := serv.repo.SaveAchievements(ctx, updated); err != nil {
			slog.Warn("persisting achievements on load failed", slog.String("error", err.Error()))
		}
	}

	serv.mu.Lock()
	defer serv.mu.Unlock()
	serv.stats = stats
	serv.log = entries
	serv.achievements = updated
	serv.settings = settings
	serv.customItems = customItems
	serv.initialized = true
	return nil
}

// Stored records degrade to defaults on read failure; the repositories have
// already substituted them, so store trouble is only worth a warning. A
// canceled or expired context still fails the load: that is the caller
// giving up, not the store misbehaving.
func loadedOrDefault(record string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.New("loading " + record + " error: " + err.Error())
	}
	slog.Warn("loading stored record failed, using defaults", slog.String("record", record), slog.String("error", err.Error()))
	return nil
}

func (serv *TrackerService) LogItem(ctx context.Context, categoryID, itemID, photoURI string) (*LogResult, error) {
	item, category, err := serv.catalog.Item(categoryID, itemID)
	if err != nil {
		return nil, err
	}
	serv.mu.Lock()
	defer serv.mu.Unlock()
	if !serv.initialized {
		return nil, errorvalues.ErrNotInitialized
	}
	return serv.logResolved(ctx, item, category, photoURI, false)
}

func (serv *TrackerService) LogCustomItem(ctx context.Context, req *CustomItemRequest) (*LogResult, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			joined := errorvalues.ErrInvalidItem
			for _, fieldErr := range validationErrors {
				joined = errors.Join(joined, fieldErr)
			}
			return nil, joined
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	category := &entity.Category{ID: "custom", Name: "Custom Items", Icon: "create"}
	if req.CategoryID != "" {
		category, err = serv.catalog.Category(req.CategoryID)
		if err != nil {
			return nil, err
		}
	}
	serv.mu.Lock()
	defer serv.mu.Unlock()
	if !serv.initialized {
		return nil, errorvalues.ErrNotInitialized
	}
	now := serv.now()
	item := entity.TrashItem{
		ID:            newID("custom", now),
		Name:          req.Name,
		Material:      req.Material,
		Disposal:      req.Disposal,
		RiskHuman:     req.RiskHuman,
		RiskAnimal:    req.RiskAnimal,
		RiskEnv:       req.RiskEnv,
		Decomposition: req.Decomposition,
		EcoFact:       req.EcoFact,
		Points:        req.Points,
	}
	items := make([]entity.TrashItem, 0, len(serv.customItems)+1)
	items = append(items, serv.customItems...)
	items = append(items, item)
	if err := serv.repo.SaveCustomItems(ctx, items); err != nil {
		return nil, errors.New("store error: " + err.Error())
	}
	serv.customItems = items
	return serv.logResolved(ctx, &item, category, req.PhotoURI, true)
}

// logResolved runs the log-event transaction. The entry and stats must both
// be durable before anything is committed to memory or achievements are
// touched; a crash in between loses at most the achievement write, which the
// next Initialize recomputes. Caller holds the mutex.
func (serv *TrackerService) logResolved(ctx context.Context, item *entity.TrashItem, category *entity.Category, photoURI string, custom bool) (*LogResult, error) {
	now := serv.now()
	newStats := tracker.ApplyLogEvent(serv.stats, item, category, now)
	entry := entity.LogEntry{
		ID:            newID("log", now),
		ItemID:        item.ID,
		ItemName:      item.Name,
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		Disposal:      item.Disposal,
		Material:      item.Material,
		RiskHuman:     item.RiskHuman,
		RiskAnimal:    item.RiskAnimal,
		RiskEnv:       item.RiskEnv,
		Decomposition: item.Decomposition,
		EcoFact:       item.EcoFact,
		Points:        item.Points,
		PhotoURI:      photoURI,
		CustomItem:    custom,
		Timestamp:     now,
	}
	if err := serv.repo.AppendLogEntry(ctx, entry); err != nil {
		return nil, errors.New("store error: " + err.Error())
	}
	if err := serv.repo.SaveStats(ctx, newStats); err != nil {
		return nil, errors.New("store error: " + err.Error())
	}
	serv.stats = newStats
	updatedLog := make([]entity.LogEntry, 0, len(serv.log)+1)
	updatedLog = append(updatedLog, entry)
	updatedLog = append(updatedLog, serv.log...)
	serv.log = updatedLog

	updated, unlocked := tracker.EvaluateAchievements(newStats, serv.log, serv.achievements, now)
	if len(unlocked) > 0 {
		if err := serv.repo.SaveAchievements(ctx, updated); err != nil {
			return nil, errors.New("store error: " + err.Error())
		}
		serv.achievements = updated
	}
	return &LogResult{
		Entry:    entry,
		Unlocked: unlocked,
	}, nil
}

// Entry ids only need uniqueness within one device's log; millisecond
// timestamp plus a short random suffix is enough.
func newID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), uuid.NewString()[:8])
}

func (serv *TrackerService) Stats() entity.UserStats {
	serv.mu.Lock()
	defer serv.mu.Unlock()
	stats := serv.stats
	stats.ItemsByCategory = copyCounts(serv.stats.ItemsByCategory)
	stats.ItemsByDisposal = copyCounts(serv.stats.ItemsByDisposal)
	return stats
}

func copyCounts(counts map[string]int) map[string]int {
	copied := make(map[string]int, len(counts))
	for key, count := range counts {
		copied[key] = count
	}
	return copied
}

func (serv *TrackerService) Log() []entity.LogEntry {
	serv.mu.Lock()
	defer serv.mu.Unlock()
	entries := make([]entity.LogEntry, len(serv.log))
	copy(entries, serv.log)
	return entries
}

func (serv *TrackerService) Achievements() []entity.Achievement {
	serv.mu.Lock()
	defer serv.mu.Unlock()
	achievements := make([]entity.Achievement, len(serv.achievements))
	copy(achievements, serv.achievements)
	return achievements
}

func (serv *TrackerService) CustomItems() []entity.TrashItem {
	serv.mu.Lock()
	defer serv.mu.Unlock()
	items := make([]entity.TrashItem, len(serv.customItems))
	copy(items, serv.customItems)
	return items
}

func (serv *TrackerService) Settings() entity.Settings {
	serv.mu.Lock()
	defer serv.mu.Unlock()
	return serv.settings
}

func (serv *TrackerService) SetDarkMode(ctx context.Context, darkMode bool) error {
	serv.mu.Lock()
	defer serv.mu.Unlock()
	settings := serv.settings
	settings.DarkMode = darkMode
	if err := serv.repo.SaveSettings(ctx, settings); err != nil {
		return errors.New("store error: " + err.Error())
	}
	serv.settings = settings
	return nil
}
