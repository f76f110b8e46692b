package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/uptrace/bun"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByDiscordID(ctx context.Context, discordID string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, discordID string) error
	AddGold(ctx context.Context, discordID string, amount int64) error
	UpdateStreak(ctx context.Context, discordID string, count int, at time.Time) error
	GetTopUsers(ctx context.Context, limit int) ([]*models.User, error)
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(user).Exec(ctx)
	return err
}

func (r *userRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("discord_id = ?", discordID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "user", ID: discordID}
		}
		slog.Error("Database error when getting user",
			slog.String("type", "db"),
			slog.String("operation", "GetByDiscordID"),
			slog.String("discord_id", discordID),
			slog.String("error", err.Error()))
		return nil, err
	}

	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(user).
		WherePK().
		Exec(ctx)
	return err
}

func (r *userRepository) Delete(ctx context.Context, discordID string) error {
	_, err := r.db.NewDelete().
		Model((*models.User)(nil)).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) AddGold(ctx context.Context, discordID string, amount int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("gold = gold + ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) UpdateStreak(ctx context.Context, discordID string, count int, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("streak_count = ?", count).
		Set("last_streak_at = ?", at).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) GetTopUsers(ctx context.Context, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Order("level DESC", "exp DESC").
		Limit(limit).
		Scan(ctx)
	return users, err
}
