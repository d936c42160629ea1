package tracker

import (
	"time"

	"github.com/binbuddy/tracker/pkg/entity"
)

// EvaluateAchievements runs the unlock rules over the current stats and the
// full log. Already-unlocked entries pass through untouched, so evaluation
// is monotone and idempotent. The second return value holds only the
// achievements that flipped during this call; an empty slice means the
// stored achievement state doesn't need rewriting.
func EvaluateAchievements(stats entity.UserStats, log []entity.LogEntry, current []entity.Achievement, now time.Time) ([]entity.Achievement, []entity.Achievement) {
	var plasticCount, compostCount, recycleCount int
	for _, e := range log {
		if e.CategoryID == "plastic" {
			plasticCount++
		}
		switch e.Disposal {
		case "compost":
			compostCount++
		case "recycle":
			recycleCount++
		}
	}

	updated := make([]entity.Achievement, len(current))
	var unlocked []entity.Achievement
	for i, a := range current {
		if !a.Unlocked && shouldUnlock(a.ID, stats, plasticCount, compostCount, recycleCount) {
			a.Unlocked = true
			at := now
			a.UnlockedAt = &at
			unlocked = append(unlocked, a)
		}
		updated[i] = a
	}
	return updated, unlocked
}

func shouldUnlock(id string, stats entity.UserStats, plasticCount, compostCount, recycleCount int) bool {
	switch id {
	case "plastic-protector":
		return plasticCount >= 20
	case "compost-champion":
		return compostCount >= 15
	case "ocean-guardian":
		return recycleCount >= 25
	case "zero-waste-warrior":
		return stats.TotalItems >= 50
	case "landfill-slayer":
		return stats.TotalItems >= 100
	case "carbon-crusher":
		return stats.CurrentStreak >= 7
	case "streak-30":
		return stats.CurrentStreak >= 30
	case "streak-100":
		return stats.CurrentStreak >= 100
	case "streak-365":
		return stats.CurrentStreak >= 365
	}
	return false
}
