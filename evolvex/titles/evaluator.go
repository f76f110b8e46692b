package titles

import (
	"context"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
	"github.com/evolvex/evolvex/evolvex/logger"
)

// Evaluator awards titles whose requirements the user now meets.
// The clock is injected so behavioral windows are testable.
type Evaluator struct {
	titleRepo    repositories.TitleRepository
	questRepo    repositories.QuestRepository
	skillRepo    repositories.SkillRepository
	progressRepo repositories.ProgressRepository
	now          func() time.Time
}

func NewEvaluator(titleRepo repositories.TitleRepository, questRepo repositories.QuestRepository, skillRepo repositories.SkillRepository, progressRepo repositories.ProgressRepository) *Evaluator {
	return &Evaluator{
		titleRepo:    titleRepo,
		questRepo:    questRepo,
		skillRepo:    skillRepo,
		progressRepo: progressRepo,
		now:          time.Now,
	}
}

// WithClock overrides the evaluator's clock.
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	e.now = now
	return e
}

// Evaluate checks the catalog in sort order and awards every title the
// user newly qualifies for. Safe to call after any profile change.
func (e *Evaluator) Evaluate(ctx context.Context, user *models.User, stats *models.Stats) ([]*models.Title, error) {
	catalog, err := e.titleRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	held, err := e.titleRepo.GetUserTitles(ctx, user.DiscordID)
	if err != nil {
		return nil, err
	}
	heldSet := make(map[string]bool, len(held))
	for _, ut := range held {
		heldSet[ut.TitleID] = true
	}

	// lazily counted, most evaluations never need them
	questCount := -1
	skillCount := -1

	var awarded []*models.Title
	for _, title := range catalog {
		if heldSet[title.ID] {
			continue
		}

		qualifies := false
		switch title.RequirementType {
		case models.RequirementNone:
			qualifies = true
		case models.RequirementLevel:
			qualifies = user.Level >= title.RequirementCount
		case models.RequirementStat:
			qualifies = statValue(stats, title.RequirementTarget) >= title.RequirementCount
		case models.RequirementQuestsComplete:
			if questCount < 0 {
				questCount, err = e.questRepo.CountCompletions(ctx, user.DiscordID)
				if err != nil {
					return awarded, err
				}
			}
			qualifies = questCount >= title.RequirementCount
		case models.RequirementSkillsUnlocked:
			if skillCount < 0 {
				skillCount, err = e.skillRepo.CountUserSkills(ctx, user.DiscordID)
				if err != nil {
					return awarded, err
				}
			}
			qualifies = skillCount >= title.RequirementCount
		case models.RequirementClock:
			qualifies = inClockWindow(title.RequirementTarget, e.now())
		}

		if !qualifies {
			continue
		}

		if err := e.titleRepo.Award(ctx, user.DiscordID, title.ID); err != nil {
			return awarded, err
		}
		awarded = append(awarded, title)

		_ = e.progressRepo.Record(ctx, user.DiscordID, models.ActionTitleEarned, map[string]any{
			"title_id": title.ID,
		})
		logger.LogGameEvent("title_earned",
			"discord_id", user.DiscordID,
			"title_id", title.ID,
		)
	}

	return awarded, nil
}

// Bonuses sums the passive stat bonuses of every held title.
func (e *Evaluator) Bonuses(ctx context.Context, discordID string) (map[string]int, error) {
	held, err := e.titleRepo.GetUserTitles(ctx, discordID)
	if err != nil {
		return nil, err
	}

	bonuses := make(map[string]int)
	for _, ut := range held {
		title, err := e.titleRepo.GetByID(ctx, ut.TitleID)
		if err != nil {
			continue
		}
		for name, value := range title.StatBonus {
			bonuses[name] += value
		}
	}
	return bonuses, nil
}

func statValue(stats *models.Stats, name string) int {
	switch name {
	case models.StatStrength:
		return stats.Strength
	case models.StatAgility:
		return stats.Agility
	case models.StatIntelligence:
		return stats.Intelligence
	}
	return 0
}

// inClockWindow reports whether t falls inside a behavioral window.
// Night wraps midnight: 23:00 up to 04:00. Dawn is 05:00 up to 08:00.
func inClockWindow(window string, t time.Time) bool {
	h := t.Hour()
	switch window {
	case models.ClockWindowNight:
		return h >= 23 || h < 4
	case models.ClockWindowDawn:
		return h >= 5 && h < 8
	}
	return false
}
