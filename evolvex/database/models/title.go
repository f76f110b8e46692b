package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Title requirement kinds, checked in catalog order when a profile changes.
const (
	RequirementNone           = "none"
	RequirementLevel          = "level"
	RequirementStat           = "stat"
	RequirementQuestsComplete = "quests_completed"
	RequirementSkillsUnlocked = "skills_unlocked"
	RequirementClock          = "clock"
)

// Clock windows for behavioral titles.
const (
	ClockWindowNight = "night" // 23:00 - 04:00
	ClockWindowDawn  = "dawn"  // 05:00 - 08:00
)

type Title struct {
	bun.BaseModel `bun:"table:titles,alias:t"`

	ID          string `bun:"id,pk"`
	Name        string `bun:"name,notnull"`
	Description string `bun:"description"`

	RequirementType   string `bun:"requirement_type,notnull,default:'none'"`
	RequirementTarget string `bun:"requirement_target"`
	RequirementCount  int    `bun:"requirement_count,notnull,default:0"`

	// Passive stat bonus while the title is held.
	StatBonus map[string]int `bun:"stat_bonus,type:jsonb"`

	SortOrder int       `bun:"sort_order,notnull,default:0"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type UserTitle struct {
	bun.BaseModel `bun:"table:user_titles,alias:ut"`

	ID        int64     `bun:"id,pk,autoincrement"`
	DiscordID string    `bun:"discord_id,notnull"`
	TitleID   string    `bun:"title_id,notnull"`
	EarnedAt  time.Time `bun:"earned_at,notnull,default:current_timestamp"`
}
