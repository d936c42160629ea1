package tracker

import (
	"time"

	"github.com/binbuddy/tracker/pkg/entity"
)

// ApplyLogEvent folds one disposal event into the stats. The input snapshot
// is not modified; a fresh copy comes back with the streak, totals and both
// count maps advanced. After the fold:
//
//	sum(itemsByCategory) == totalItems == sum(itemsByDisposal)
//	maxStreak >= currentStreak
func ApplyLogEvent(stats entity.UserStats, item *entity.TrashItem, category *entity.Category, today time.Time) entity.UserStats {
	streak := StreakOnLog(stats.LastLogDate, stats.CurrentStreak, today)

	next := entity.UserStats{
		TotalPoints:     stats.TotalPoints + item.Points,
		TotalItems:      stats.TotalItems + 1,
		CurrentStreak:   streak,
		LastLogDate:     today.Format(DateLayout),
		MaxStreak:       max(stats.MaxStreak, streak),
		ItemsByCategory: make(map[string]int, len(stats.ItemsByCategory)+1),
		ItemsByDisposal: make(map[string]int, len(stats.ItemsByDisposal)+1),
	}
	for id, count := range stats.ItemsByCategory {
		next.ItemsByCategory[id] = count
	}
	for method, count := range stats.ItemsByDisposal {
		next.ItemsByDisposal[method] = count
	}
	next.ItemsByCategory[category.ID]++
	next.ItemsByDisposal[item.Disposal]++
	return next
}
