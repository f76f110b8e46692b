package quests

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
	"github.com/evolvex/evolvex/evolvex/logger"
	"github.com/evolvex/evolvex/evolvex/progression"
	"github.com/sahilm/fuzzy"
)

// CompletionResult bundles everything a quest completion produced.
type CompletionResult struct {
	Quest       *models.Quest
	Progression *progression.Result
	StatGains   map[string]int
	StaminaLeft int
	GoldGained  int64
}

// Service handles quest completion and the custom quest lifecycle.
type Service struct {
	questRepo    repositories.QuestRepository
	progressRepo repositories.ProgressRepository
	prog         *progression.Service

	// GoldPerQuest is a flat payout per completion on top of exp.
	GoldPerQuest int64
}

func NewService(questRepo repositories.QuestRepository, progressRepo repositories.ProgressRepository, prog *progression.Service) *Service {
	return &Service{
		questRepo:    questRepo,
		progressRepo: progressRepo,
		prog:         prog,
		GoldPerQuest: 10,
	}
}

// Complete runs the full reward flow for one quest: stamina gate, exp
// award, stat rewards, completion record.
func (s *Service) Complete(ctx context.Context, user *models.User, stats *models.Stats, questID string) (*CompletionResult, error) {
	quest, err := s.questRepo.GetByQuestID(ctx, questID)
	if err != nil {
		return nil, err
	}

	if quest.IsCustom && quest.OwnerID != user.DiscordID {
		return nil, ErrForbidden
	}

	// Stamina is checked, never silently clamped: the user should know
	// the quest was refused
	if stats.Stamina < quest.StaminaCost {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientStamina, stats.Stamina, quest.StaminaCost)
	}
	stats.Stamina -= quest.StaminaCost

	for name, gain := range quest.StatRewards {
		stats.Apply(name, gain)
	}

	user.Gold += s.GoldPerQuest

	progResult, err := s.prog.AwardExp(ctx, user, stats, quest.ExpReward)
	if err != nil {
		return nil, fmt.Errorf("failed to award exp: %w", err)
	}

	if err := s.questRepo.RecordCompletion(ctx, &models.QuestCompletion{
		DiscordID: user.DiscordID,
		QuestID:   quest.QuestID,
		ExpGained: quest.ExpReward,
	}); err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	_ = s.progressRepo.Record(ctx, user.DiscordID, models.ActionQuestComplete, map[string]any{
		"quest_id": quest.QuestID,
		"exp":      quest.ExpReward,
	})

	logger.LogGameEvent("quest_complete",
		"discord_id", user.DiscordID,
		"quest_id", quest.QuestID,
		"exp", quest.ExpReward,
	)

	return &CompletionResult{
		Quest:       quest,
		Progression: progResult,
		StatGains:   quest.StatRewards,
		StaminaLeft: stats.Stamina,
		GoldGained:  s.GoldPerQuest,
	}, nil
}

// CreateCustom registers a user-defined quest.
func (s *Service) CreateCustom(ctx context.Context, ownerID string, quest *models.Quest) error {
	if _, err := s.questRepo.GetByQuestID(ctx, quest.QuestID); err == nil {
		return fmt.Errorf("%w: %s", ErrQuestExists, quest.QuestID)
	} else if !repositories.IsNotFound(err) {
		return err
	}

	quest.IsCustom = true
	quest.OwnerID = ownerID
	quest.Category = models.QuestCategoryCustom
	return s.questRepo.Create(ctx, quest)
}

// UpdateCustom edits a custom quest after an ownership check.
func (s *Service) UpdateCustom(ctx context.Context, ownerID string, quest *models.Quest) error {
	existing, err := s.questRepo.GetByQuestID(ctx, quest.QuestID)
	if err != nil {
		return err
	}
	if !existing.IsCustom {
		return ErrBuiltinQuest
	}
	if existing.OwnerID != ownerID {
		return ErrForbidden
	}

	existing.Title = quest.Title
	existing.Description = quest.Description
	existing.Difficulty = quest.Difficulty
	existing.ExpReward = quest.ExpReward
	existing.StatRewards = quest.StatRewards
	existing.StaminaCost = quest.StaminaCost
	return s.questRepo.Update(ctx, existing)
}

// DeleteCustom removes a custom quest after an ownership check.
func (s *Service) DeleteCustom(ctx context.Context, ownerID, questID string) error {
	existing, err := s.questRepo.GetByQuestID(ctx, questID)
	if err != nil {
		return err
	}
	if !existing.IsCustom {
		return ErrBuiltinQuest
	}
	if existing.OwnerID != ownerID {
		return ErrForbidden
	}
	return s.questRepo.Delete(ctx, questID)
}

// ListVisible returns every quest the user can complete, with an
// optional fuzzy search over titles. Quests are never filtered by
// current stamina: the user sees the whole board.
func (s *Service) ListVisible(ctx context.Context, discordID, search string) ([]*models.Quest, error) {
	all, err := s.questRepo.GetVisible(ctx, discordID)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return all, nil
	}

	names := make([]string, len(all))
	for i, q := range all {
		names[i] = strings.ToLower(q.Title)
	}

	matches := fuzzy.Find(strings.ToLower(search), names)
	sort.Stable(matches)

	out := make([]*models.Quest, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out, nil
}

// CompletionsToday counts completions since local midnight.
func (s *Service) CompletionsToday(ctx context.Context, discordID string, now time.Time) (int, error) {
	completions, err := s.questRepo.GetRecentCompletions(ctx, discordID, 100)
	if err != nil {
		return 0, err
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count := 0
	for _, c := range completions {
		if !c.CompletedAt.Before(midnight) {
			count++
		}
	}
	return count, nil
}
