package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	QuestCategoryPhysical = "physical"
	QuestCategorySystem   = "system"
	QuestCategoryCustom   = "custom"
)

const (
	QuestDifficultyEasy   = "easy"
	QuestDifficultyMedium = "medium"
	QuestDifficultyHard   = "hard"
)

type Quest struct {
	bun.BaseModel `bun:"table:quests,alias:q"`

	ID          int64          `bun:"id,pk,autoincrement"`
	QuestID     string         `bun:"quest_id,notnull,unique"`
	Title       string         `bun:"title,notnull"`
	Description string         `bun:"description"`
	Category    string         `bun:"category,notnull"`
	Difficulty  string         `bun:"difficulty,notnull,default:'easy'"`
	ExpReward   int64          `bun:"exp_reward,notnull"`
	StatRewards map[string]int `bun:"stat_rewards,type:jsonb"`
	StaminaCost int            `bun:"stamina_cost,notnull,default:0"`

	// Custom quests belong to the user who created them.
	IsCustom bool   `bun:"is_custom,notnull,default:false"`
	OwnerID  string `bun:"owner_id"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type QuestCompletion struct {
	bun.BaseModel `bun:"table:quest_completions,alias:qc"`

	ID          int64     `bun:"id,pk,autoincrement"`
	DiscordID   string    `bun:"discord_id,notnull"`
	QuestID     string    `bun:"quest_id,notnull"`
	ExpGained   int64     `bun:"exp_gained,notnull"`
	CompletedAt time.Time `bun:"completed_at,notnull,default:current_timestamp"`
}
