package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Stat names used in quest rewards, title requirements and skill effects.
const (
	StatStrength     = "strength"
	StatAgility      = "agility"
	StatIntelligence = "intelligence"
	StatStamina      = "stamina"
	StatMaxStamina   = "max_stamina"
	StatHealth       = "health"
	StatMaxHealth    = "max_health"
	StatExp          = "exp"
)

type Stats struct {
	bun.BaseModel `bun:"table:stats,alias:st"`

	ID        int64  `bun:"id,pk,autoincrement"`
	DiscordID string `bun:"discord_id,notnull,unique"`

	Strength     int `bun:"strength,notnull,default:10"`
	Agility      int `bun:"agility,notnull,default:10"`
	Intelligence int `bun:"intelligence,notnull,default:10"`
	Stamina      int `bun:"stamina,notnull,default:50"`
	MaxStamina   int `bun:"max_stamina,notnull,default:55"`
	Health       int `bun:"health,notnull,default:100"`
	MaxHealth    int `bun:"max_health,notnull,default:100"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// Core returns the three trainable attributes keyed by stat name.
func (s *Stats) Core() map[string]int {
	return map[string]int{
		StatStrength:     s.Strength,
		StatAgility:      s.Agility,
		StatIntelligence: s.Intelligence,
	}
}

// Apply adds delta to the named stat, clamping stamina and health
// into their [0, max] windows. Unknown names are ignored.
func (s *Stats) Apply(name string, delta int) {
	switch name {
	case StatStrength:
		s.Strength += delta
	case StatAgility:
		s.Agility += delta
	case StatIntelligence:
		s.Intelligence += delta
	case StatStamina:
		s.Stamina = clamp(s.Stamina+delta, 0, s.MaxStamina)
	case StatMaxStamina:
		s.MaxStamina += delta
		if s.Stamina > s.MaxStamina {
			s.Stamina = s.MaxStamina
		}
	case StatHealth:
		s.Health = clamp(s.Health+delta, 0, s.MaxHealth)
	case StatMaxHealth:
		s.MaxHealth += delta
		if s.Health > s.MaxHealth {
			s.Health = s.MaxHealth
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
