package repositories

import (
	"context"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/uptrace/bun"
)

type ProgressRepository interface {
	Record(ctx context.Context, discordID, actionType string, details map[string]any) error
	GetRecent(ctx context.Context, discordID string, limit int) ([]*models.ProgressLog, error)
	GetSince(ctx context.Context, discordID string, since time.Time) ([]*models.ProgressLog, error)
}

type progressRepository struct {
	db *bun.DB
}

func NewProgressRepository(db *bun.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Record(ctx context.Context, discordID, actionType string, details map[string]any) error {
	log := &models.ProgressLog{
		DiscordID:  discordID,
		ActionType: actionType,
		Details:    details,
		CreatedAt:  time.Now(),
	}
	_, err := r.db.NewInsert().Model(log).Exec(ctx)
	return err
}

func (r *progressRepository) GetRecent(ctx context.Context, discordID string, limit int) ([]*models.ProgressLog, error) {
	var logs []*models.ProgressLog
	err := r.db.NewSelect().
		Model(&logs).
		Where("discord_id = ?", discordID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	return logs, err
}

func (r *progressRepository) GetSince(ctx context.Context, discordID string, since time.Time) ([]*models.ProgressLog, error) {
	var logs []*models.ProgressLog
	err := r.db.NewSelect().
		Model(&logs).
		Where("discord_id = ?", discordID).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Scan(ctx)
	return logs, err
}
