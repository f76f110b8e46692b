package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Progress log action types.
const (
	ActionQuestComplete  = "quest_complete"
	ActionLevelUp        = "level_up"
	ActionSkillUnlock    = "skill_unlock"
	ActionSkillUse       = "skill_use"
	ActionTitleEarned    = "title_earned"
	ActionDungeonEnter   = "dungeon_enter"
	ActionDungeonCleared = "dungeon_cleared"
	ActionDungeonFled    = "dungeon_fled"
	ActionRest           = "rest"
	ActionPurchase       = "purchase"
)

type ProgressLog struct {
	bun.BaseModel `bun:"table:progress_logs,alias:pl"`

	ID         int64          `bun:"id,pk,autoincrement"`
	DiscordID  string         `bun:"discord_id,notnull"`
	ActionType string         `bun:"action_type,notnull"`
	Details    map[string]any `bun:"details,type:jsonb"`
	CreatedAt  time.Time      `bun:"created_at,notnull,default:current_timestamp"`
}
