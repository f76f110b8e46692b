package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	DungeonStatusActive  = "active"
	DungeonStatusCleared = "cleared"
	DungeonStatusFled    = "fled"
)

// Dungeon ranks in ascending difficulty.
const (
	DungeonRankE = "E"
	DungeonRankD = "D"
	DungeonRankC = "C"
	DungeonRankB = "B"
	DungeonRankA = "A"
	DungeonRankS = "S"
)

type DungeonSession struct {
	bun.BaseModel `bun:"table:dungeon_sessions,alias:ds"`

	ID        int64  `bun:"id,pk,autoincrement"`
	DiscordID string `bun:"discord_id,notnull"`
	Rank      string `bun:"rank,notnull"`

	BossMaxHP     int `bun:"boss_max_hp,notnull"`
	BossCurrentHP int `bun:"boss_current_hp,notnull"`
	ExpReward     int64 `bun:"exp_reward,notnull"`

	Status string `bun:"status,notnull,default:'active'"`

	// Breached marks expiry past the timer. Advisory only, the session
	// stays strikeable until the user resolves it.
	Breached bool `bun:"breached,notnull,default:false"`

	StartedAt  time.Time `bun:"started_at,notnull,default:current_timestamp"`
	ExpiresAt  time.Time `bun:"expires_at,notnull"`
	ResolvedAt time.Time `bun:"resolved_at,nullzero"`
}

func (d *DungeonSession) IsActive() bool {
	return d.Status == DungeonStatusActive
}
