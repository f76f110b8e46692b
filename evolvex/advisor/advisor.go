package advisor

import (
	"context"
	"time"

	"github.com/evolvex/evolvex/evolvex/config"
	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
)

// Advisor derives coaching signals from a user's profile.
type Advisor struct {
	questRepo repositories.QuestRepository
	userRepo  repositories.UserRepository
}

func New(questRepo repositories.QuestRepository, userRepo repositories.UserRepository) *Advisor {
	return &Advisor{questRepo: questRepo, userRepo: userRepo}
}

// Weaknesses lists core stats sitting below the configured share of the
// user's core average.
func Weaknesses(stats *models.Stats) []string {
	core := stats.Core()
	total := 0
	for _, v := range core {
		total += v
	}
	avg := float64(total) / float64(len(core))
	threshold := avg * config.WeaknessThresholdRate

	var weak []string
	for _, name := range []string{models.StatStrength, models.StatAgility, models.StatIntelligence} {
		if float64(core[name]) < threshold {
			weak = append(weak, name)
		}
	}
	return weak
}

// Burnout reports whether stamina has dropped under the warning share
// of its cap.
func Burnout(stats *models.Stats) bool {
	if stats.MaxStamina == 0 {
		return false
	}
	return float64(stats.Stamina) < float64(stats.MaxStamina)*config.BurnoutStaminaRate
}

// LowestCoreStat returns the weakest of the three trainable stats.
// Ties resolve in strength, agility, intelligence order.
func LowestCoreStat(stats *models.Stats) string {
	core := stats.Core()
	lowest := models.StatStrength
	for _, name := range []string{models.StatAgility, models.StatIntelligence} {
		if core[name] < core[lowest] {
			lowest = name
		}
	}
	return lowest
}

// RecommendQuest picks the visible quest whose rewards best train the
// user's weakest stat. Falls back to any quest when nothing targets it.
func (a *Advisor) RecommendQuest(ctx context.Context, discordID string, stats *models.Stats) (*models.Quest, error) {
	quests, err := a.questRepo.GetVisible(ctx, discordID)
	if err != nil {
		return nil, err
	}
	if len(quests) == 0 {
		return nil, nil
	}

	target := LowestCoreStat(stats)

	var best *models.Quest
	bestGain := 0
	for _, q := range quests {
		if gain := q.StatRewards[target]; gain > bestGain {
			best = q
			bestGain = gain
		}
	}
	if best == nil {
		best = quests[0]
	}
	return best, nil
}

// StreakResult describes a streak transition.
type StreakResult struct {
	Count   int
	Changed bool
	Broken  bool
}

// ApplyStreak rolls the login streak for an activity at now. Same-day
// activity is a no-op, the next day extends, one missed day decays by
// one, longer gaps reset.
func ApplyStreak(user *models.User, now time.Time) StreakResult {
	if user.LastStreakAt.IsZero() {
		return StreakResult{Count: 1, Changed: true}
	}

	last := dayOf(user.LastStreakAt)
	today := dayOf(now)
	gap := int(today.Sub(last).Hours() / 24)

	switch {
	case gap <= 0:
		return StreakResult{Count: user.StreakCount}
	case gap == 1:
		return StreakResult{Count: user.StreakCount + 1, Changed: true}
	case gap <= config.StreakDecayAfter:
		count := user.StreakCount - 1
		if count < 0 {
			count = 0
		}
		return StreakResult{Count: count, Changed: true, Broken: true}
	default:
		return StreakResult{Count: 1, Changed: true, Broken: true}
	}
}

// TouchStreak applies and persists the streak for an activity at now.
func (a *Advisor) TouchStreak(ctx context.Context, user *models.User, now time.Time) (StreakResult, error) {
	result := ApplyStreak(user, now)
	if !result.Changed {
		return result, nil
	}

	user.StreakCount = result.Count
	user.LastStreakAt = now
	if err := a.userRepo.UpdateStreak(ctx, user.DiscordID, result.Count, now); err != nil {
		return result, err
	}
	return result, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
