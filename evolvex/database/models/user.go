package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64  `bun:"id,pk,autoincrement"`
	DiscordID    string `bun:"discord_id,notnull,unique"`
	Username     string `bun:"username,notnull"`
	Level        int    `bun:"level,notnull,default:1"`
	Exp          int64  `bun:"exp,notnull,default:0"`
	ExpRequired  int64  `bun:"exp_required,notnull,default:100"`
	SkillPoints  int    `bun:"skill_points,notnull,default:0"`
	Gold         int64  `bun:"gold,notnull,default:0"`
	ProfileImage string `bun:"profile_image"`

	// Login streak (decays after a missed day, resets after two)
	StreakCount  int       `bun:"streak_count,notnull,default:0"`
	LastStreakAt time.Time `bun:"last_streak_at"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// ExpRequiredForLevel is the hunter curve: level squared times one hundred.
func ExpRequiredForLevel(level int) int64 {
	return int64(level) * int64(level) * 100
}
