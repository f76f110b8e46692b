package dungeons

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evolvex/evolvex/evolvex/config"
	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
	"github.com/evolvex/evolvex/evolvex/logger"
	"github.com/evolvex/evolvex/evolvex/progression"
)

// ClearResult bundles the payout of a cleared dungeon.
type ClearResult struct {
	Session     *models.DungeonSession
	Progression *progression.Result
	GoldGained  int64
}

// Manager owns the dungeon session lifecycle.
type Manager struct {
	dungeonRepo  repositories.DungeonRepository
	userRepo     repositories.UserRepository
	statsRepo    repositories.StatsRepository
	progressRepo repositories.ProgressRepository
	prog         *progression.Service
}

func NewManager(dungeonRepo repositories.DungeonRepository, userRepo repositories.UserRepository, statsRepo repositories.StatsRepository, progressRepo repositories.ProgressRepository, prog *progression.Service) *Manager {
	return &Manager{
		dungeonRepo:  dungeonRepo,
		userRepo:     userRepo,
		statsRepo:    statsRepo,
		progressRepo: progressRepo,
		prog:         prog,
	}
}

// Enter opens a session against the rank's boss. One active session
// per user.
func (m *Manager) Enter(ctx context.Context, user *models.User, rank string) (*models.DungeonSession, error) {
	cfg, ok := GetRank(rank)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRank, rank)
	}
	if user.Level < cfg.MinLevel {
		return nil, fmt.Errorf("%w: rank %s requires level %d", ErrLevelTooLow, rank, cfg.MinLevel)
	}

	if _, err := m.dungeonRepo.GetActive(ctx, user.DiscordID); err == nil {
		return nil, ErrDungeonActive
	} else if !repositories.IsNotFound(err) {
		return nil, err
	}

	session := &models.DungeonSession{
		DiscordID:     user.DiscordID,
		Rank:          cfg.Rank,
		BossMaxHP:     cfg.BossHP,
		BossCurrentHP: cfg.BossHP,
		ExpReward:     cfg.ExpReward,
		Status:        models.DungeonStatusActive,
		ExpiresAt:     time.Now().Add(cfg.Duration),
	}
	if err := m.dungeonRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to open dungeon: %w", err)
	}

	_ = m.progressRepo.Record(ctx, user.DiscordID, models.ActionDungeonEnter, map[string]any{
		"rank": rank,
	})
	logger.LogGameEvent("dungeon_enter",
		"discord_id", user.DiscordID,
		"rank", rank,
	)
	return session, nil
}

// Strike reports progress against the boss. Damage is bounded per hit
// and the boss floors at zero.
func (m *Manager) Strike(ctx context.Context, discordID string, damage int) (*models.DungeonSession, error) {
	session, err := m.dungeonRepo.GetActive(ctx, discordID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrNoActiveDungeon
		}
		return nil, err
	}

	maxStrike := int(float64(session.BossMaxHP) * config.DungeonMaxStrikeRate)
	if damage <= 0 || damage > maxStrike {
		return nil, fmt.Errorf("%w: must be 1-%d", ErrDamageOutOfBounds, maxStrike)
	}

	session.BossCurrentHP -= damage
	if session.BossCurrentHP < 0 {
		session.BossCurrentHP = 0
	}

	if err := m.dungeonRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to record strike: %w", err)
	}
	return session, nil
}

// Complete claims the clear reward. Only a downed boss counts.
func (m *Manager) Complete(ctx context.Context, user *models.User, stats *models.Stats) (*ClearResult, error) {
	session, err := m.dungeonRepo.GetActive(ctx, user.DiscordID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrNoActiveDungeon
		}
		return nil, err
	}
	if session.BossCurrentHP > 0 {
		return nil, fmt.Errorf("%w: %d HP remaining", ErrBossAlive, session.BossCurrentHP)
	}

	cfg, _ := GetRank(session.Rank)

	session.Status = models.DungeonStatusCleared
	session.ResolvedAt = time.Now()
	if err := m.dungeonRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to close dungeon: %w", err)
	}

	user.Gold += cfg.GoldReward
	progResult, err := m.prog.AwardExp(ctx, user, stats, session.ExpReward)
	if err != nil {
		return nil, fmt.Errorf("failed to award exp: %w", err)
	}

	_ = m.progressRepo.Record(ctx, user.DiscordID, models.ActionDungeonCleared, map[string]any{
		"rank": session.Rank,
		"exp":  session.ExpReward,
		"gold": cfg.GoldReward,
	})
	logger.LogGameEvent("dungeon_cleared",
		"discord_id", user.DiscordID,
		"rank", session.Rank,
	)

	return &ClearResult{
		Session:     session,
		Progression: progResult,
		GoldGained:  cfg.GoldReward,
	}, nil
}

// Flee abandons the session at the cost of a fifth of max health.
func (m *Manager) Flee(ctx context.Context, user *models.User, stats *models.Stats) (*models.DungeonSession, int, error) {
	session, err := m.dungeonRepo.GetActive(ctx, user.DiscordID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, 0, ErrNoActiveDungeon
		}
		return nil, 0, err
	}

	penalty := int(float64(stats.MaxHealth) * config.DungeonFleePenaltyRate)
	stats.Apply(models.StatHealth, -penalty)

	session.Status = models.DungeonStatusFled
	session.ResolvedAt = time.Now()
	if err := m.dungeonRepo.Update(ctx, session); err != nil {
		return nil, 0, fmt.Errorf("failed to close dungeon: %w", err)
	}
	if err := m.statsRepo.Update(ctx, stats); err != nil {
		return nil, 0, fmt.Errorf("failed to apply flee penalty: %w", err)
	}

	_ = m.progressRepo.Record(ctx, user.DiscordID, models.ActionDungeonFled, map[string]any{
		"rank":    session.Rank,
		"penalty": penalty,
	})
	logger.LogGameEvent("dungeon_fled",
		"discord_id", user.DiscordID,
		"rank", session.Rank,
		"penalty", penalty,
	)
	return session, penalty, nil
}

// Active returns the user's current session, if any.
func (m *Manager) Active(ctx context.Context, discordID string) (*models.DungeonSession, error) {
	session, err := m.dungeonRepo.GetActive(ctx, discordID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrNoActiveDungeon
		}
		return nil, err
	}
	return session, nil
}

// StartSweeper runs the background timer pass: flags breached sessions
// and purges resolved ones past retention. Blocks until ctx is done.
func (m *Manager) StartSweeper(ctx context.Context) {
	ticker := time.NewTicker(config.DungeonSweepInterval)
	defer ticker.Stop()

	slog.Info("Dungeon sweeper started",
		slog.String("type", "game"),
		slog.Duration("interval", config.DungeonSweepInterval),
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Dungeon sweeper stopped", slog.String("type", "game"))
			return
		case <-ticker.C:
			now := time.Now()
			if breached, err := m.dungeonRepo.MarkBreached(ctx, now); err != nil {
				slog.Error("Failed to mark breached dungeons",
					slog.String("type", "game"),
					slog.Any("error", err))
			} else if breached > 0 {
				slog.Info("Dungeon timers breached",
					slog.String("type", "game"),
					slog.Int64("count", breached))
			}

			cutoff := now.Add(-config.DungeonResolvedRetention)
			if purged, err := m.dungeonRepo.DeleteResolvedBefore(ctx, cutoff); err != nil {
				slog.Error("Failed to purge resolved dungeons",
					slog.String("type", "game"),
					slog.Any("error", err))
			} else if purged > 0 {
				slog.Debug("Purged resolved dungeon sessions",
					slog.String("type", "game"),
					slog.Int64("count", purged))
			}
		}
	}
}
