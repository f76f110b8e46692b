package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/uptrace/bun"
)

type SkillRepository interface {
	GetByID(ctx context.Context, skillID string) (*models.Skill, error)
	GetAll(ctx context.Context) ([]*models.Skill, error)

	GetUserSkill(ctx context.Context, discordID, skillID string) (*models.UserSkill, error)
	GetUserSkills(ctx context.Context, discordID string) ([]*models.UserSkill, error)
	CreateUserSkill(ctx context.Context, us *models.UserSkill) error
	UpdateUserSkill(ctx context.Context, us *models.UserSkill) error
	CountUserSkills(ctx context.Context, discordID string) (int, error)
}

type skillRepository struct {
	db *bun.DB
}

func NewSkillRepository(db *bun.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) GetByID(ctx context.Context, skillID string) (*models.Skill, error) {
	skill := new(models.Skill)
	err := r.db.NewSelect().
		Model(skill).
		Where("id = ?", skillID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "skill", ID: skillID}
		}
		return nil, err
	}
	return skill, nil
}

func (r *skillRepository) GetAll(ctx context.Context) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.NewSelect().
		Model(&skills).
		Order("unlock_level ASC", "id ASC").
		Scan(ctx)
	return skills, err
}

func (r *skillRepository) GetUserSkill(ctx context.Context, discordID, skillID string) (*models.UserSkill, error) {
	us := new(models.UserSkill)
	err := r.db.NewSelect().
		Model(us).
		Where("discord_id = ?", discordID).
		Where("skill_id = ?", skillID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "user_skill", ID: skillID}
		}
		return nil, err
	}
	return us, nil
}

func (r *skillRepository) GetUserSkills(ctx context.Context, discordID string) ([]*models.UserSkill, error) {
	var skills []*models.UserSkill
	err := r.db.NewSelect().
		Model(&skills).
		Where("discord_id = ?", discordID).
		Order("unlocked_at ASC").
		Scan(ctx)
	return skills, err
}

func (r *skillRepository) CreateUserSkill(ctx context.Context, us *models.UserSkill) error {
	us.UnlockedAt = time.Now()
	us.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(us).Exec(ctx)
	return err
}

func (r *skillRepository) UpdateUserSkill(ctx context.Context, us *models.UserSkill) error {
	us.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(us).
		WherePK().
		Exec(ctx)
	return err
}

func (r *skillRepository) CountUserSkills(ctx context.Context, discordID string) (int, error) {
	return r.db.NewSelect().
		Model((*models.UserSkill)(nil)).
		Where("discord_id = ?", discordID).
		Count(ctx)
}
