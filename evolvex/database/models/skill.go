package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	SkillTypeActive  = "active"
	SkillTypePassive = "passive"
)

// Real-world effect kinds attached to active skills. The bot surfaces
// these to the user instead of simulating them.
const (
	EffectBreathing = "breathing"
	EffectAudio     = "audio"
)

// RealWorldEffect describes what the user is prompted to actually do
// when an active skill fires.
type RealWorldEffect struct {
	Type     string `json:"type"`
	Duration int    `json:"duration,omitempty"` // seconds, breathing exercises
	Src      string `json:"src,omitempty"`      // audio track reference
	Label    string `json:"label,omitempty"`
}

type Skill struct {
	bun.BaseModel `bun:"table:skills,alias:sk"`

	ID          string `bun:"id,pk"`
	Name        string `bun:"name,notnull"`
	Description string `bun:"description"`
	Type        string `bun:"type,notnull"`

	UnlockLevel int `bun:"unlock_level,notnull,default:1"`
	UnlockCost  int `bun:"unlock_cost,notnull,default:1"`
	StaminaCost int `bun:"stamina_cost,notnull,default:0"`
	MaxLevel    int `bun:"max_level,notnull,default:1"`

	// Base effect at skill level 1 plus per-level scaling.
	Effect  map[string]int `bun:"effect,type:jsonb"`
	Scaling map[string]int `bun:"scaling,type:jsonb"`

	RealWorld *RealWorldEffect `bun:"real_world,type:jsonb"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// EffectAt returns the skill's effect values at the given skill level.
func (s *Skill) EffectAt(level int) map[string]int {
	out := make(map[string]int, len(s.Effect))
	for name, base := range s.Effect {
		out[name] = base + s.Scaling[name]*(level-1)
	}
	return out
}

type UserSkill struct {
	bun.BaseModel `bun:"table:user_skills,alias:us"`

	ID        int64  `bun:"id,pk,autoincrement"`
	DiscordID string `bun:"discord_id,notnull"`
	SkillID   string `bun:"skill_id,notnull"`
	Level     int    `bun:"level,notnull,default:1"`
	Exp       int64  `bun:"exp,notnull,default:0"`

	UnlockedAt time.Time `bun:"unlocked_at,notnull,default:current_timestamp"`
	UpdatedAt  time.Time `bun:"updated_at,notnull"`
}

// SkillExpRequired is the mastery curve: one hundred exp per level.
func SkillExpRequired(level int) int64 {
	return int64(level) * 100
}
