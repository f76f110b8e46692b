package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/evolvex/evolvex/evolvex/config"
	"github.com/evolvex/evolvex/evolvex/database/models"
	lru "github.com/hashicorp/golang-lru"
	"github.com/uptrace/bun"
)

type QuestRepository interface {
	Create(ctx context.Context, quest *models.Quest) error
	GetByQuestID(ctx context.Context, questID string) (*models.Quest, error)
	Update(ctx context.Context, quest *models.Quest) error
	Delete(ctx context.Context, questID string) error
	GetAll(ctx context.Context) ([]*models.Quest, error)
	GetVisible(ctx context.Context, discordID string) ([]*models.Quest, error)
	GetByCategory(ctx context.Context, category string) ([]*models.Quest, error)

	RecordCompletion(ctx context.Context, completion *models.QuestCompletion) error
	CountCompletions(ctx context.Context, discordID string) (int, error)
	GetRecentCompletions(ctx context.Context, discordID string, limit int) ([]*models.QuestCompletion, error)
}

// cachedQuest wraps a catalog entry with its cache timestamp.
type cachedQuest struct {
	quest     *models.Quest
	timestamp time.Time
}

type questRepository struct {
	db          *bun.DB
	cache       *lru.Cache
	cacheExpiry time.Duration
}

func NewQuestRepository(db *bun.DB) QuestRepository {
	cache, _ := lru.New(config.CatalogCacheSize)
	return &questRepository{
		db:          db,
		cache:       cache,
		cacheExpiry: config.CatalogCacheExpiration,
	}
}

func (r *questRepository) Create(ctx context.Context, quest *models.Quest) error {
	quest.CreatedAt = time.Now()
	quest.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(quest).Exec(ctx)
	if err == nil {
		r.cache.Add(quest.QuestID, cachedQuest{quest: quest, timestamp: time.Now()})
	}
	return err
}

func (r *questRepository) GetByQuestID(ctx context.Context, questID string) (*models.Quest, error) {
	if cached, ok := r.cache.Get(questID); ok {
		entry := cached.(cachedQuest)
		if time.Since(entry.timestamp) < r.cacheExpiry {
			return entry.quest, nil
		}
		r.cache.Remove(questID)
	}

	quest := new(models.Quest)
	err := r.db.NewSelect().
		Model(quest).
		Where("quest_id = ?", questID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "quest", ID: questID}
		}
		return nil, err
	}

	r.cache.Add(questID, cachedQuest{quest: quest, timestamp: time.Now()})
	return quest, nil
}

func (r *questRepository) Update(ctx context.Context, quest *models.Quest) error {
	quest.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(quest).
		WherePK().
		Exec(ctx)
	if err == nil {
		r.cache.Remove(quest.QuestID)
	}
	return err
}

func (r *questRepository) Delete(ctx context.Context, questID string) error {
	_, err := r.db.NewDelete().
		Model((*models.Quest)(nil)).
		Where("quest_id = ?", questID).
		Exec(ctx)
	if err == nil {
		r.cache.Remove(questID)
	}
	return err
}

func (r *questRepository) GetAll(ctx context.Context) ([]*models.Quest, error) {
	var quests []*models.Quest
	err := r.db.NewSelect().
		Model(&quests).
		Order("category ASC", "quest_id ASC").
		Scan(ctx)
	return quests, err
}

// GetVisible returns built-in quests plus the user's own custom quests.
func (r *questRepository) GetVisible(ctx context.Context, discordID string) ([]*models.Quest, error) {
	var quests []*models.Quest
	err := r.db.NewSelect().
		Model(&quests).
		Where("is_custom = false OR owner_id = ?", discordID).
		Order("category ASC", "quest_id ASC").
		Scan(ctx)
	return quests, err
}

func (r *questRepository) GetByCategory(ctx context.Context, category string) ([]*models.Quest, error) {
	var quests []*models.Quest
	err := r.db.NewSelect().
		Model(&quests).
		Where("category = ?", category).
		Order("quest_id ASC").
		Scan(ctx)
	return quests, err
}

func (r *questRepository) RecordCompletion(ctx context.Context, completion *models.QuestCompletion) error {
	completion.CompletedAt = time.Now()
	_, err := r.db.NewInsert().Model(completion).Exec(ctx)
	return err
}

func (r *questRepository) CountCompletions(ctx context.Context, discordID string) (int, error) {
	return r.db.NewSelect().
		Model((*models.QuestCompletion)(nil)).
		Where("discord_id = ?", discordID).
		Count(ctx)
}

func (r *questRepository) GetRecentCompletions(ctx context.Context, discordID string, limit int) ([]*models.QuestCompletion, error) {
	var completions []*models.QuestCompletion
	err := r.db.NewSelect().
		Model(&completions).
		Where("discord_id = ?", discordID).
		Order("completed_at DESC").
		Limit(limit).
		Scan(ctx)
	return completions, err
}
