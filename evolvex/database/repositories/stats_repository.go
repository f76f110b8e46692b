package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/uptrace/bun"
)

type StatsRepository interface {
	Create(ctx context.Context, stats *models.Stats) error
	GetByDiscordID(ctx context.Context, discordID string) (*models.Stats, error)
	Update(ctx context.Context, stats *models.Stats) error
	Delete(ctx context.Context, discordID string) error
}

type statsRepository struct {
	db *bun.DB
}

func NewStatsRepository(db *bun.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Create(ctx context.Context, stats *models.Stats) error {
	stats.CreatedAt = time.Now()
	stats.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(stats).Exec(ctx)
	return err
}

func (r *statsRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.Stats, error) {
	stats := new(models.Stats)
	err := r.db.NewSelect().
		Model(stats).
		Where("discord_id = ?", discordID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "stats", ID: discordID}
		}
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) Update(ctx context.Context, stats *models.Stats) error {
	stats.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(stats).
		WherePK().
		Exec(ctx)
	return err
}

func (r *statsRepository) Delete(ctx context.Context, discordID string) error {
	_, err := r.db.NewDelete().
		Model((*models.Stats)(nil)).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}
