package skills

import (
	"context"
	"fmt"

	"github.com/evolvex/evolvex/evolvex/config"
	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
	"github.com/evolvex/evolvex/evolvex/logger"
	"github.com/evolvex/evolvex/evolvex/progression"
)

// UseResult describes one skill activation.
type UseResult struct {
	Skill       *models.Skill
	SkillLevel  int
	Effects     map[string]int
	RealWorld   *models.RealWorldEffect
	Progression *progression.Result
	MasteryUp   bool
	StaminaLeft int
}

// Service handles skill unlocks, activation and mastery.
type Service struct {
	skillRepo    repositories.SkillRepository
	progressRepo repositories.ProgressRepository
	userRepo     repositories.UserRepository
	statsRepo    repositories.StatsRepository
	prog         *progression.Service
}

func NewService(skillRepo repositories.SkillRepository, progressRepo repositories.ProgressRepository, userRepo repositories.UserRepository, statsRepo repositories.StatsRepository, prog *progression.Service) *Service {
	return &Service{
		skillRepo:    skillRepo,
		progressRepo: progressRepo,
		userRepo:     userRepo,
		statsRepo:    statsRepo,
		prog:         prog,
	}
}

// Unlock spends skill points to learn a skill.
func (s *Service) Unlock(ctx context.Context, user *models.User, skillID string) (*models.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return nil, err
	}

	if _, err := s.skillRepo.GetUserSkill(ctx, user.DiscordID, skillID); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyUnlocked, skill.Name)
	} else if !repositories.IsNotFound(err) {
		return nil, err
	}

	if user.Level < skill.UnlockLevel {
		return nil, fmt.Errorf("%w: requires level %d", ErrLevelTooLow, skill.UnlockLevel)
	}
	if user.SkillPoints < skill.UnlockCost {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientSkillPoints, user.SkillPoints, skill.UnlockCost)
	}

	// Grant the skill before spending points so a failed insert
	// cannot burn them
	if err := s.skillRepo.CreateUserSkill(ctx, &models.UserSkill{
		DiscordID: user.DiscordID,
		SkillID:   skillID,
		Level:     1,
	}); err != nil {
		return nil, fmt.Errorf("failed to unlock skill: %w", err)
	}

	user.SkillPoints -= skill.UnlockCost
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	_ = s.progressRepo.Record(ctx, user.DiscordID, models.ActionSkillUnlock, map[string]any{
		"skill_id": skillID,
	})

	logger.LogGameEvent("skill_unlock",
		"discord_id", user.DiscordID,
		"skill_id", skillID,
	)
	return skill, nil
}

// Use activates an unlocked active skill, applying its scaled effects
// and advancing its mastery.
func (s *Service) Use(ctx context.Context, user *models.User, stats *models.Stats, skillID string) (*UseResult, error) {
	skill, err := s.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if skill.Type != models.SkillTypeActive {
		return nil, fmt.Errorf("%w: %s", ErrPassiveSkill, skill.Name)
	}

	us, err := s.skillRepo.GetUserSkill(ctx, user.DiscordID, skillID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotUnlocked, skill.Name)
		}
		return nil, err
	}

	if stats.Stamina < skill.StaminaCost {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientStamina, stats.Stamina, skill.StaminaCost)
	}
	stats.Stamina -= skill.StaminaCost

	effects := skill.EffectAt(us.Level)

	var expBonus int64
	for name, value := range effects {
		if name == models.StatExp {
			expBonus = int64(value)
			continue
		}
		stats.Apply(name, value)
	}

	result := &UseResult{
		Skill:       skill,
		SkillLevel:  us.Level,
		Effects:     effects,
		RealWorld:   skill.RealWorld,
		StaminaLeft: stats.Stamina,
	}

	if expBonus > 0 {
		progResult, err := s.prog.AwardExp(ctx, user, stats, expBonus)
		if err != nil {
			return nil, fmt.Errorf("failed to award exp: %w", err)
		}
		result.Progression = progResult
	} else {
		if err := s.statsRepo.Update(ctx, stats); err != nil {
			return nil, fmt.Errorf("failed to update stats: %w", err)
		}
	}

	result.MasteryUp = s.advanceMastery(us, skill.MaxLevel)
	if err := s.skillRepo.UpdateUserSkill(ctx, us); err != nil {
		return nil, fmt.Errorf("failed to update skill mastery: %w", err)
	}
	result.SkillLevel = us.Level

	_ = s.progressRepo.Record(ctx, user.DiscordID, models.ActionSkillUse, map[string]any{
		"skill_id":    skillID,
		"skill_level": us.Level,
	})

	return result, nil
}

// advanceMastery adds the per-use exp and rolls the mastery level,
// capped at the skill's max.
func (s *Service) advanceMastery(us *models.UserSkill, maxLevel int) bool {
	if us.Level >= maxLevel {
		return false
	}

	us.Exp += config.SkillExpPerUse
	required := models.SkillExpRequired(us.Level)
	leveled := false
	for us.Exp >= required && us.Level < maxLevel {
		us.Exp -= required
		us.Level++
		leveled = true
		required = models.SkillExpRequired(us.Level)
	}
	return leveled
}

// PassiveBonuses sums the scaled effects of every unlocked passive skill.
func (s *Service) PassiveBonuses(ctx context.Context, discordID string) (map[string]int, error) {
	userSkills, err := s.skillRepo.GetUserSkills(ctx, discordID)
	if err != nil {
		return nil, err
	}

	bonuses := make(map[string]int)
	for _, us := range userSkills {
		skill, err := s.skillRepo.GetByID(ctx, us.SkillID)
		if err != nil {
			continue
		}
		if skill.Type != models.SkillTypePassive {
			continue
		}
		for name, value := range skill.EffectAt(us.Level) {
			bonuses[name] += value
		}
	}
	return bonuses, nil
}

// List pairs the catalog with the user's unlock state.
type ListEntry struct {
	Skill    *models.Skill
	Unlocked bool
	Level    int
	Exp      int64
}

func (s *Service) List(ctx context.Context, discordID string) ([]ListEntry, error) {
	catalog, err := s.skillRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	owned, err := s.skillRepo.GetUserSkills(ctx, discordID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.UserSkill, len(owned))
	for _, us := range owned {
		byID[us.SkillID] = us
	}

	entries := make([]ListEntry, 0, len(catalog))
	for _, skill := range catalog {
		entry := ListEntry{Skill: skill}
		if us, ok := byID[skill.ID]; ok {
			entry.Unlocked = true
			entry.Level = us.Level
			entry.Exp = us.Exp
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
