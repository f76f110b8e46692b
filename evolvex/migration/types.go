package migration

import "time"

// Legacy MongoDB document shapes. Field tags follow the old collection
// layout, not the Postgres schema.

type MongoHunter struct {
	DiscordID   string `bson:"discord_id"`
	Username    string `bson:"username"`
	Level       int    `bson:"level"`
	Exp         int64  `bson:"exp"`
	SkillPoints int    `bson:"skill_points"`
	Gold        int64  `bson:"gold"`

	Stats MongoStats `bson:"stats"`

	Streak       int       `bson:"streak"`
	LastStreakAt time.Time `bson:"last_streak_at"`
	CreatedAt    time.Time `bson:"created_at"`
}

type MongoStats struct {
	Strength     int `bson:"strength"`
	Agility      int `bson:"agility"`
	Intelligence int `bson:"intelligence"`
	Stamina      int `bson:"stamina"`
	MaxStamina   int `bson:"max_stamina"`
	Health       int `bson:"health"`
	MaxHealth    int `bson:"max_health"`
}

type MongoQuestLog struct {
	DiscordID   string    `bson:"discord_id"`
	QuestID     string    `bson:"quest_id"`
	ExpGained   int64     `bson:"exp_gained"`
	CompletedAt time.Time `bson:"completed_at"`
}

type MongoHunterSkill struct {
	DiscordID string `bson:"discord_id"`
	SkillID   string `bson:"skill_id"`
	Level     int    `bson:"level"`
	Exp       int64  `bson:"exp"`
}

type MongoHunterTitle struct {
	DiscordID string    `bson:"discord_id"`
	TitleID   string    `bson:"title_id"`
	EarnedAt  time.Time `bson:"earned_at"`
}

// TableStats tracks per-table import counts.
type TableStats struct {
	Read     int
	Imported int
	Skipped  int
}

// MigrationStats aggregates the run.
type MigrationStats struct {
	Tables    map[string]*TableStats
	StartTime time.Time
	EndTime   time.Time
}
