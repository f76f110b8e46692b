package progression

import "github.com/evolvex/evolvex/evolvex/config"

type Config struct {
	// BaseExpFactor scales the level curve: required = level^2 * factor.
	BaseExpFactor int64

	SkillPointsPerLevel  int
	StrengthPerLevel     int
	AgilityPerLevel      int
	IntelligencePerLevel int
	MaxStaminaPerLevel   int
	MaxHealthPerLevel    int

	// GoldPerLevel is paid out on each level gained.
	GoldPerLevel int64
}

func DefaultConfig() *Config {
	return &Config{
		BaseExpFactor:        100,
		SkillPointsPerLevel:  config.SkillPointsPerLevel,
		StrengthPerLevel:     config.StrengthPerLevel,
		AgilityPerLevel:      config.AgilityPerLevel,
		IntelligencePerLevel: config.IntelligencePerLevel,
		MaxStaminaPerLevel:   config.MaxStaminaPerLevel,
		MaxHealthPerLevel:    config.MaxHealthPerLevel,
		GoldPerLevel:         100,
	}
}
