package service

import (
	"context"

	"github.com/binbuddy/tracker/pkg/entity"
)

type CustomItemRequest struct {
	Name          string `validate:"required,min=1,max=100"`
	Material      string `validate:"required,max=100"`
	Disposal      string `validate:"required,disposal_method"`
	CategoryID    string
	RiskHuman     string `validate:"max=200"`
	RiskAnimal    string `validate:"max=200"`
	RiskEnv       string `validate:"max=200"`
	Decomposition string `validate:"max=100"`
	EcoFact       string `validate:"max=500"`
	Points        int    `validate:"gte=0,lte=100"`
	PhotoURI      string
}

// LogResult is what one successful log operation produced: the persisted
// entry and any achievements it unlocked.
type LogResult struct {
	Entry    entity.LogEntry
	Unlocked []entity.Achievement
}

type TrackerServiceI interface {
	// Loads all stored records, adjusts the streak for days passed since the
	// last session and re-evaluates achievements. Must run before anything else
	Initialize(ctx context.Context) error
	// Logs one catalog item. Unknown ids log nothing and return an error
	LogItem(ctx context.Context, categoryID, itemID, photoURI string) (*LogResult, error)
	// Validates and stores a user-defined item, then logs it
	LogCustomItem(ctx context.Context, req *CustomItemRequest) (*LogResult, error)
	Stats() entity.UserStats
	Log() []entity.LogEntry
	Achievements() []entity.Achievement
	CustomItems() []entity.TrashItem
	Settings() entity.Settings
	SetDarkMode(ctx context.Context, darkMode bool) error
}

// CatalogI is the read-only waste catalog the tracker resolves items from.
type CatalogI interface {
	Categories() []entity.Category
	Category(id string) (*entity.Category, error)
	Item(categoryID, itemID string) (*entity.TrashItem, *entity.Category, error)
}
