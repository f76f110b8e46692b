package config

import "time"

// Application-wide constants organized by domain

// UI and Display Constants
const (
	// Pagination
	QuestsPerPage   = 6
	SkillsPerPage   = 8
	TitlesPerPage   = 10
	DefaultPageSize = 10

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	// Discord UI Colors
	EmbedDefaultColor = 0x2B2D31
	LevelUpColor      = 0xFFD700
	DungeonColor      = 0x8B0000
	TitleColor        = 0x9B59B6
)

// Database and Performance Constants
const (
	DefaultQueryTimeout     = 30 * time.Second
	StatsQueryTimeout       = 10 * time.Second
	BatchQueryTimeout       = 30 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	NetworkDialTimeout      = 5 * time.Second

	// Cache settings
	CatalogCacheSize       = 512
	CatalogCacheExpiration = 5 * time.Minute

	// Batch processing
	DefaultBatchSize = 50
	MaxRetries       = 3
)

// Game Mechanics Constants
const (
	// Progression
	BaseLevel            = 1
	SkillPointsPerLevel  = 1
	StrengthPerLevel     = 2
	AgilityPerLevel      = 2
	IntelligencePerLevel = 2
	MaxStaminaPerLevel   = 3
	MaxHealthPerLevel    = 10

	// New account seeds
	StartingStat       = 10
	StartingStamina    = 50
	StartingMaxStamina = 55
	StartingHealth     = 100
	StartingMaxHealth  = 100

	// Stamina recovery
	DefaultRestAmount = 20

	// Skills
	SkillExpPerUse      = 10
	SkillExpLevelFactor = 100

	// Dungeons
	DungeonFleePenaltyRate   = 0.2 // share of max health lost on flee
	DungeonMaxStrikeRate     = 0.1 // max damage per strike, share of boss max HP
	DungeonSweepInterval     = 1 * time.Minute
	DungeonResolvedRetention = 24 * time.Hour

	// Streaks
	StreakDecayAfter = 2 // missed days before decay
	StreakResetAfter = 3 // missed days before full reset
)

// Advisor Constants
const (
	WeaknessThresholdRate = 0.8 // stat below 80% of the str/agi/int average
	BurnoutStaminaRate    = 0.2 // stamina under 20% of max flags burnout risk
)

// File and Storage Constants
const (
	MaxAvatarSize  = 10 * 1024 * 1024 // 10MB
	AvatarRoot     = "avatars/"
	TempUploadPath = "/tmp/uploads/"
)

// Security Constants
const (
	MaxUsernameLength    = 32
	MaxQuestTitleLength  = 80
	MaxDescriptionLength = 500
)
