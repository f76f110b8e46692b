package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/uptrace/bun"
)

type TitleRepository interface {
	GetByID(ctx context.Context, titleID string) (*models.Title, error)
	GetAll(ctx context.Context) ([]*models.Title, error)

	GetUserTitles(ctx context.Context, discordID string) ([]*models.UserTitle, error)
	HasTitle(ctx context.Context, discordID, titleID string) (bool, error)
	Award(ctx context.Context, discordID, titleID string) error
}

type titleRepository struct {
	db *bun.DB
}

func NewTitleRepository(db *bun.DB) TitleRepository {
	return &titleRepository{db: db}
}

func (r *titleRepository) GetByID(ctx context.Context, titleID string) (*models.Title, error) {
	title := new(models.Title)
	err := r.db.NewSelect().
		Model(title).
		Where("id = ?", titleID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "title", ID: titleID}
		}
		return nil, err
	}
	return title, nil
}

func (r *titleRepository) GetAll(ctx context.Context) ([]*models.Title, error) {
	var titles []*models.Title
	err := r.db.NewSelect().
		Model(&titles).
		Order("sort_order ASC").
		Scan(ctx)
	return titles, err
}

func (r *titleRepository) GetUserTitles(ctx context.Context, discordID string) ([]*models.UserTitle, error) {
	var titles []*models.UserTitle
	err := r.db.NewSelect().
		Model(&titles).
		Where("discord_id = ?", discordID).
		Order("earned_at ASC").
		Scan(ctx)
	return titles, err
}

func (r *titleRepository) HasTitle(ctx context.Context, discordID, titleID string) (bool, error) {
	return r.db.NewSelect().
		Model((*models.UserTitle)(nil)).
		Where("discord_id = ?", discordID).
		Where("title_id = ?", titleID).
		Exists(ctx)
}

// Award grants a title, ignoring duplicates so re-evaluation is idempotent.
func (r *titleRepository) Award(ctx context.Context, discordID, titleID string) error {
	ut := &models.UserTitle{
		DiscordID: discordID,
		TitleID:   titleID,
	}
	_, err := r.db.NewInsert().
		Model(ut).
		On("CONFLICT (discord_id, title_id) DO NOTHING").
		Exec(ctx)
	return err
}
