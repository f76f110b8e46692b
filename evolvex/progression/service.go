package progression

import (
	"context"
	"fmt"

	"github.com/evolvex/evolvex/evolvex/config"
	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
)

// Service owns the level curve and every exp mutation.
type Service struct {
	config       *Config
	calculator   *Calculator
	userRepo     repositories.UserRepository
	statsRepo    repositories.StatsRepository
	progressRepo repositories.ProgressRepository
}

func NewService(cfg *Config, userRepo repositories.UserRepository, statsRepo repositories.StatsRepository, progressRepo repositories.ProgressRepository) *Service {
	return &Service{
		config:       cfg,
		calculator:   NewCalculator(cfg),
		userRepo:     userRepo,
		statsRepo:    statsRepo,
		progressRepo: progressRepo,
	}
}

func (s *Service) Calculator() *Calculator {
	return s.calculator
}

// GetOrCreate loads a user and their stats, seeding both on first contact.
func (s *Service) GetOrCreate(ctx context.Context, discordID, username string) (*models.User, *models.Stats, error) {
	user, err := s.userRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		if !repositories.IsNotFound(err) {
			return nil, nil, fmt.Errorf("failed to load user: %w", err)
		}
		user = &models.User{
			DiscordID:   discordID,
			Username:    username,
			Level:       1,
			ExpRequired: s.calculator.CalculateExpRequirement(1),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	stats, err := s.statsRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		if !repositories.IsNotFound(err) {
			return nil, nil, fmt.Errorf("failed to load stats: %w", err)
		}
		stats = &models.Stats{
			DiscordID:    discordID,
			Strength:     config.StartingStat,
			Agility:      config.StartingStat,
			Intelligence: config.StartingStat,
			Stamina:      config.StartingStamina,
			MaxStamina:   config.StartingMaxStamina,
			Health:       config.StartingHealth,
			MaxHealth:    config.StartingMaxHealth,
		}
		if err := s.statsRepo.Create(ctx, stats); err != nil {
			return nil, nil, fmt.Errorf("failed to create stats: %w", err)
		}
	}

	return user, stats, nil
}

// Rest restores stamina, capped at the user's maximum. Returns the
// amount actually recovered.
func (s *Service) Rest(ctx context.Context, user *models.User, stats *models.Stats, amount int) (int, error) {
	if amount <= 0 {
		amount = config.DefaultRestAmount
	}

	before := stats.Stamina
	stats.Apply(models.StatStamina, amount)
	recovered := stats.Stamina - before

	if err := s.statsRepo.Update(ctx, stats); err != nil {
		return 0, fmt.Errorf("failed to update stats: %w", err)
	}

	_ = s.progressRepo.Record(ctx, user.DiscordID, models.ActionRest, map[string]any{
		"recovered": recovered,
	})
	return recovered, nil
}

// AwardExp applies an exp award and persists user and stats.
func (s *Service) AwardExp(ctx context.Context, user *models.User, stats *models.Stats, exp int64) (*Result, error) {
	result := s.calculator.Apply(user, stats, exp)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if err := s.statsRepo.Update(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	if result.LeveledUp() {
		_ = s.progressRepo.Record(ctx, user.DiscordID, models.ActionLevelUp, map[string]any{
			"new_level":     user.Level,
			"levels_gained": result.LevelsGained,
			"skill_points":  result.SkillPointsGained,
		})
	}

	return result, nil
}
