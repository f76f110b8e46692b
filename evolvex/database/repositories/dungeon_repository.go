package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/uptrace/bun"
)

type DungeonRepository interface {
	Create(ctx context.Context, session *models.DungeonSession) error
	GetActive(ctx context.Context, discordID string) (*models.DungeonSession, error)
	Update(ctx context.Context, session *models.DungeonSession) error
	MarkBreached(ctx context.Context, now time.Time) (int64, error)
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	CountCleared(ctx context.Context, discordID string) (int, error)
}

type dungeonRepository struct {
	db *bun.DB
}

func NewDungeonRepository(db *bun.DB) DungeonRepository {
	return &dungeonRepository{db: db}
}

func (r *dungeonRepository) Create(ctx context.Context, session *models.DungeonSession) error {
	session.StartedAt = time.Now()
	_, err := r.db.NewInsert().Model(session).Exec(ctx)
	return err
}

func (r *dungeonRepository) GetActive(ctx context.Context, discordID string) (*models.DungeonSession, error) {
	session := new(models.DungeonSession)
	err := r.db.NewSelect().
		Model(session).
		Where("discord_id = ?", discordID).
		Where("status = ?", models.DungeonStatusActive).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "dungeon_session", ID: discordID}
		}
		return nil, err
	}
	return session, nil
}

func (r *dungeonRepository) Update(ctx context.Context, session *models.DungeonSession) error {
	_, err := r.db.NewUpdate().
		Model(session).
		WherePK().
		Exec(ctx)
	return err
}

// MarkBreached flags active sessions past their timer. Breached sessions
// stay strikeable, the flag only changes how they are displayed.
func (r *dungeonRepository) MarkBreached(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*models.DungeonSession)(nil)).
		Set("breached = true").
		Where("status = ?", models.DungeonStatusActive).
		Where("breached = false").
		Where("expires_at < ?", now).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *dungeonRepository) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*models.DungeonSession)(nil)).
		Where("status != ?", models.DungeonStatusActive).
		Where("resolved_at < ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *dungeonRepository) CountCleared(ctx context.Context, discordID string) (int, error) {
	return r.db.NewSelect().
		Model((*models.DungeonSession)(nil)).
		Where("discord_id = ?", discordID).
		Where("status = ?", models.DungeonStatusCleared).
		Count(ctx)
}
