package entity

import "time"

// DisposalMethods lists the supported handling categories for an item.
var DisposalMethods = []string{"recycle", "compost", "trash", "hazardous", "reuse"}

// UserStats is the running aggregate over the whole disposal log.
// Field names match the stored JSON blob, so old data keeps loading.
type UserStats struct {
	TotalPoints     int            `json:"totalPoints"`
	TotalItems      int            `json:"totalItems"`
	CurrentStreak   int            `json:"currentStreak"`
	LastLogDate     string         `json:"lastLogDate,omitempty"`
	MaxStreak       int            `json:"maxStreak"`
	ItemsByCategory map[string]int `json:"itemsByCategory"`
	ItemsByDisposal map[string]int `json:"itemsByDisposal"`
}

func DefaultStats() UserStats {
	return UserStats{
		ItemsByCategory: make(map[string]int),
		ItemsByDisposal: make(map[string]int),
	}
}

// LogEntry is one logged disposal event. Catalog fields are copied in at
// logging time, so later catalog edits never rewrite history.
type LogEntry struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"itemId"`
	ItemName      string    `json:"itemName"`
	CategoryID    string    `json:"categoryId"`
	CategoryName  string    `json:"categoryName"`
	Disposal      string    `json:"disposal"`
	Material      string    `json:"material"`
	RiskHuman     string    `json:"riskHuman"`
	RiskAnimal    string    `json:"riskAnimal"`
	RiskEnv       string    `json:"riskEnv"`
	Decomposition string    `json:"decomposition"`
	EcoFact       string    `json:"ecoFact"`
	Points        int       `json:"points"`
	PhotoURI      string    `json:"photoUri,omitempty"`
	CustomItem    bool      `json:"customItem,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// DefaultAchievements returns the full badge catalog with every entry locked.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: "plastic-protector", Name: "Plastic Protector", Description: "Log 20 plastic items", Icon: "water"},
		{ID: "compost-champion", Name: "Compost Champion", Description: "Compost 15 organic items", Icon: "leaf"},
		{ID: "ocean-guardian", Name: "Ocean Guardian", Description: "Recycle 25 items", Icon: "fish"},
		{ID: "zero-waste-warrior", Name: "Zero Waste Warrior", Description: "Log 50 items total", Icon: "shield"},
		{ID: "landfill-slayer", Name: "Landfill Slayer", Description: "Log 100 items total", Icon: "flame"},
		{ID: "carbon-crusher", Name: "Carbon Crusher", Description: "Maintain 7-day streak", Icon: "flash"},
		{ID: "streak-30", Name: "Eco Veteran", Description: "30-day streak", Icon: "calendar"},
		{ID: "streak-100", Name: "Earth Hero", Description: "100-day streak", Icon: "star"},
		{ID: "streak-365", Name: "Planet Guardian", Description: "365-day streak", Icon: "planet"},
	}
}

type Settings struct {
	DarkMode bool `json:"darkMode"`
}

func DefaultSettings() Settings {
	return Settings{}
}

// TrashItem is a loggable catalog item. Custom items created by the user
// share the shape and live in their own stored blob.
type TrashItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Material      string `json:"material"`
	Disposal      string `json:"disposal"`
	RiskHuman     string `json:"riskHuman"`
	RiskAnimal    string `json:"riskAnimal"`
	RiskEnv       string `json:"riskEnv"`
	Decomposition string `json:"decomposition"`
	EcoFact       string `json:"ecoFact"`
	Points        int    `json:"points"`
}

type Category struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Icon  string      `json:"icon"`
	Items []TrashItem `json:"items"`
}
