package migration

import (
	"strings"
	"time"

	"github.com/evolvex/evolvex/evolvex/config"
	"github.com/evolvex/evolvex/evolvex/database/models"
)

func convertHunter(mh MongoHunter) *models.User {
	level := mh.Level
	if level < 1 {
		level = 1
	}

	exp := mh.Exp
	if exp < 0 {
		exp = 0
	}

	createdAt := mh.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &models.User{
		DiscordID:    strings.TrimSpace(mh.DiscordID),
		Username:     cleanseString(mh.Username),
		Level:        level,
		Exp:          exp,
		ExpRequired:  models.ExpRequiredForLevel(level),
		SkillPoints:  max(mh.SkillPoints, 0),
		Gold:         max(mh.Gold, 0),
		StreakCount:  max(mh.Streak, 0),
		LastStreakAt: mh.LastStreakAt,
		CreatedAt:    createdAt,
		UpdatedAt:    time.Now(),
	}
}

func convertStats(mh MongoHunter) *models.Stats {
	s := mh.Stats

	stats := &models.Stats{
		DiscordID:    strings.TrimSpace(mh.DiscordID),
		Strength:     s.Strength,
		Agility:      s.Agility,
		Intelligence: s.Intelligence,
		Stamina:      s.Stamina,
		MaxStamina:   s.MaxStamina,
		Health:       s.Health,
		MaxHealth:    s.MaxHealth,
	}

	// Old records predating individual stats get fresh seeds.
	if stats.Strength == 0 && stats.Agility == 0 && stats.Intelligence == 0 {
		stats.Strength = config.StartingStat
		stats.Agility = config.StartingStat
		stats.Intelligence = config.StartingStat
	}
	if stats.MaxStamina == 0 {
		stats.MaxStamina = config.StartingMaxStamina
		stats.Stamina = config.StartingStamina
	}
	if stats.MaxHealth == 0 {
		stats.MaxHealth = config.StartingMaxHealth
		stats.Health = config.StartingHealth
	}

	return stats
}

func convertQuestLog(mq MongoQuestLog) *models.QuestCompletion {
	completedAt := mq.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	return &models.QuestCompletion{
		DiscordID:   strings.TrimSpace(mq.DiscordID),
		QuestID:     strings.TrimSpace(mq.QuestID),
		ExpGained:   max(mq.ExpGained, 0),
		CompletedAt: completedAt,
	}
}

func convertHunterSkill(ms MongoHunterSkill) *models.UserSkill {
	level := ms.Level
	if level < 1 {
		level = 1
	}
	return &models.UserSkill{
		DiscordID: strings.TrimSpace(ms.DiscordID),
		SkillID:   strings.TrimSpace(ms.SkillID),
		Level:     level,
		Exp:       max(ms.Exp, 0),
	}
}

func convertHunterTitle(mt MongoHunterTitle) *models.UserTitle {
	earnedAt := mt.EarnedAt
	if earnedAt.IsZero() {
		earnedAt = time.Now()
	}
	return &models.UserTitle{
		DiscordID: strings.TrimSpace(mt.DiscordID),
		TitleID:   strings.TrimSpace(mt.TitleID),
		EarnedAt:  earnedAt,
	}
}

// cleanseString strips control characters the old bot let through.
func cleanseString(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
