package progression

import (
	"fmt"

	"github.com/evolvex/evolvex/evolvex/database/models"
)

type Calculator struct {
	config *Config
}

func NewCalculator(config *Config) *Calculator {
	return &Calculator{config: config}
}

func (c *Calculator) CalculateExpRequirement(level int) int64 {
	return int64(level) * int64(level) * c.config.BaseExpFactor
}

// Apply awards exp to the user and rolls up any level-ups, mutating
// user and stats in place. Negative awards clamp at zero and never
// take a level back.
func (c *Calculator) Apply(user *models.User, stats *models.Stats, exp int64) *Result {
	result := &Result{
		ExpGained: exp,
		NewLevel:  user.Level,
		StatGains: make(map[string]int),
	}

	user.Exp += exp
	if user.Exp < 0 {
		user.Exp = 0
	}

	// A single large award can clear several thresholds at once
	for user.Exp >= user.ExpRequired {
		user.Exp -= user.ExpRequired
		user.Level++
		user.ExpRequired = c.CalculateExpRequirement(user.Level)
		result.LevelsGained++

		user.SkillPoints += c.config.SkillPointsPerLevel
		user.Gold += c.config.GoldPerLevel
		result.SkillPointsGained += c.config.SkillPointsPerLevel
		result.GoldGained += c.config.GoldPerLevel

		stats.Strength += c.config.StrengthPerLevel
		stats.Agility += c.config.AgilityPerLevel
		stats.Intelligence += c.config.IntelligencePerLevel

		// Caps grow and both pools refill on level-up
		stats.MaxStamina += c.config.MaxStaminaPerLevel
		stats.Stamina = stats.MaxStamina
		stats.MaxHealth += c.config.MaxHealthPerLevel
		stats.Health = stats.MaxHealth

		result.StatGains[models.StatStrength] += c.config.StrengthPerLevel
		result.StatGains[models.StatAgility] += c.config.AgilityPerLevel
		result.StatGains[models.StatIntelligence] += c.config.IntelligencePerLevel
		result.StatGains[models.StatMaxStamina] += c.config.MaxStaminaPerLevel
		result.StatGains[models.StatMaxHealth] += c.config.MaxHealthPerLevel
	}

	if result.LevelsGained > 0 {
		result.Bonuses = append(result.Bonuses,
			fmt.Sprintf("🎉 Level up! Now level %d", user.Level))
	}

	result.NewLevel = user.Level
	result.CurrentExp = user.Exp
	result.RequiredExp = user.ExpRequired
	return result
}
