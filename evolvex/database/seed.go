package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
)

// InitializeQuestData seeds the built-in quest catalog. Uses upserts so
// reward tuning lands on restart without touching custom quests.
func (db *DB) InitializeQuestData(ctx context.Context) error {
	slog.Info("Initializing quest catalog...")

	physical := []models.Quest{
		{
			QuestID:     "physical_pushups",
			Title:       "Push-up Training",
			Description: "Complete 20 push-ups",
			Category:    models.QuestCategoryPhysical,
			Difficulty:  models.QuestDifficultyEasy,
			ExpReward:   50,
			StatRewards: map[string]int{models.StatStrength: 2},
			StaminaCost: 10,
		},
		{
			QuestID:     "physical_situps",
			Title:       "Sit-up Training",
			Description: "Complete 30 sit-ups",
			Category:    models.QuestCategoryPhysical,
			Difficulty:  models.QuestDifficultyEasy,
			ExpReward:   50,
			StatRewards: map[string]int{models.StatStrength: 2},
			StaminaCost: 10,
		},
		{
			QuestID:     "physical_squats",
			Title:       "Squat Training",
			Description: "Complete 30 squats",
			Category:    models.QuestCategoryPhysical,
			Difficulty:  models.QuestDifficultyEasy,
			ExpReward:   50,
			StatRewards: map[string]int{models.StatStrength: 1, models.StatAgility: 1},
			StaminaCost: 10,
		},
		{
			QuestID:     "physical_run",
			Title:       "Endurance Run",
			Description: "Run for 2 kilometers",
			Category:    models.QuestCategoryPhysical,
			Difficulty:  models.QuestDifficultyMedium,
			ExpReward:   100,
			StatRewards: map[string]int{models.StatAgility: 3},
			StaminaCost: 20,
		},
	}

	system := []models.Quest{
		{
			QuestID:     "sys_coding",
			Title:       "Deep Work: Coding",
			Description: "One hour of focused programming",
			Category:    models.QuestCategorySystem,
			Difficulty:  models.QuestDifficultyMedium,
			ExpReward:   120,
			StatRewards: map[string]int{models.StatIntelligence: 3},
			StaminaCost: 15,
		},
		{
			QuestID:     "sys_reading",
			Title:       "Study Session",
			Description: "Read 20 pages of a book",
			Category:    models.QuestCategorySystem,
			Difficulty:  models.QuestDifficultyEasy,
			ExpReward:   80,
			StatRewards: map[string]int{models.StatIntelligence: 2},
			StaminaCost: 10,
		},
	}

	allQuests := make([]models.Quest, 0, len(physical)+len(system))
	allQuests = append(allQuests, physical...)
	allQuests = append(allQuests, system...)

	now := time.Now()
	for _, quest := range allQuests {
		quest.UpdatedAt = now
		_, err := db.bunDB.NewInsert().
			Model(&quest).
			On("CONFLICT (quest_id) DO UPDATE").
			Set("title = EXCLUDED.title").
			Set("description = EXCLUDED.description").
			Set("category = EXCLUDED.category").
			Set("difficulty = EXCLUDED.difficulty").
			Set("exp_reward = EXCLUDED.exp_reward").
			Set("stat_rewards = EXCLUDED.stat_rewards").
			Set("stamina_cost = EXCLUDED.stamina_cost").
			Set("updated_at = NOW()").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert quest %s: %w", quest.QuestID, err)
		}
	}

	slog.Info("Quest catalog initialization completed",
		slog.Int("total_quests", len(allQuests)))
	return nil
}

// InitializeSkillData seeds the skill tree.
func (db *DB) InitializeSkillData(ctx context.Context) error {
	slog.Info("Initializing skill catalog...")

	skills := []models.Skill{
		{
			ID:          "active_heal",
			Name:        "Recovery",
			Description: "Guided breathing that restores stamina",
			Type:        models.SkillTypeActive,
			UnlockLevel: 1,
			UnlockCost:  1,
			StaminaCost: 0,
			MaxLevel:    5,
			Effect:      map[string]int{models.StatStamina: 20},
			Scaling:     map[string]int{models.StatStamina: 5},
			RealWorld: &models.RealWorldEffect{
				Type:     models.EffectBreathing,
				Duration: 120,
				Label:    "Box breathing, 2 minutes",
			},
		},
		{
			ID:          "active_focus",
			Name:        "Focus Mode",
			Description: "Focus audio session, grants bonus exp",
			Type:        models.SkillTypeActive,
			UnlockLevel: 2,
			UnlockCost:  1,
			StaminaCost: 15,
			MaxLevel:    10,
			Effect:      map[string]int{models.StatExp: 50},
			Scaling:     map[string]int{models.StatExp: 10},
			RealWorld: &models.RealWorldEffect{
				Type:  models.EffectAudio,
				Src:   "focus_ambient",
				Label: "Deep focus soundtrack",
			},
		},
		{
			ID:          "passive_str",
			Name:        "Iron Will",
			Description: "Permanent strength bonus while learned",
			Type:        models.SkillTypePassive,
			UnlockLevel: 2,
			UnlockCost:  1,
			MaxLevel:    1,
			Effect:      map[string]int{models.StatStrength: 5},
		},
	}

	for _, skill := range skills {
		_, err := db.bunDB.NewInsert().
			Model(&skill).
			On("CONFLICT (id) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("description = EXCLUDED.description").
			Set("type = EXCLUDED.type").
			Set("unlock_level = EXCLUDED.unlock_level").
			Set("unlock_cost = EXCLUDED.unlock_cost").
			Set("stamina_cost = EXCLUDED.stamina_cost").
			Set("max_level = EXCLUDED.max_level").
			Set("effect = EXCLUDED.effect").
			Set("scaling = EXCLUDED.scaling").
			Set("real_world = EXCLUDED.real_world").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert skill %s: %w", skill.ID, err)
		}
	}

	slog.Info("Skill catalog initialization completed",
		slog.Int("total_skills", len(skills)))
	return nil
}

// InitializeTitleData seeds the title catalog. SortOrder fixes the
// evaluation order when awarding.
func (db *DB) InitializeTitleData(ctx context.Context) error {
	slog.Info("Initializing title catalog...")

	titles := []models.Title{
		{
			ID:              "beginner",
			Name:            "Beginner",
			Description:     "Started the journey",
			RequirementType: models.RequirementNone,
			SortOrder:       0,
		},
		{
			ID:               "novice",
			Name:             "Novice Hunter",
			Description:      "Reached level 5",
			RequirementType:  models.RequirementLevel,
			RequirementCount: 5,
			SortOrder:        1,
		},
		{
			ID:               "apprentice",
			Name:             "Apprentice",
			Description:      "Reached level 10",
			RequirementType:  models.RequirementLevel,
			RequirementCount: 10,
			StatBonus:        map[string]int{models.StatIntelligence: 2},
			SortOrder:        2,
		},
		{
			ID:               "quest_master",
			Name:             "Quest Master",
			Description:      "Completed 50 quests",
			RequirementType:  models.RequirementQuestsComplete,
			RequirementCount: 50,
			StatBonus:        map[string]int{models.StatStrength: 2, models.StatAgility: 2},
			SortOrder:        3,
		},
		{
			ID:                "scholar",
			Name:              "Scholar",
			Description:       "Intelligence reached 50",
			RequirementType:   models.RequirementStat,
			RequirementTarget: models.StatIntelligence,
			RequirementCount:  50,
			StatBonus:         map[string]int{models.StatIntelligence: 5},
			SortOrder:         4,
		},
		{
			ID:                "warrior",
			Name:              "Warrior",
			Description:       "Strength reached 50",
			RequirementType:   models.RequirementStat,
			RequirementTarget: models.StatStrength,
			RequirementCount:  50,
			StatBonus:         map[string]int{models.StatStrength: 5},
			SortOrder:         5,
		},
		{
			ID:                "speedster",
			Name:              "Speedster",
			Description:       "Agility reached 50",
			RequirementType:   models.RequirementStat,
			RequirementTarget: models.StatAgility,
			RequirementCount:  50,
			StatBonus:         map[string]int{models.StatAgility: 5},
			SortOrder:         6,
		},
		{
			ID:               "unstoppable",
			Name:             "Unstoppable",
			Description:      "Reached level 20",
			RequirementType:  models.RequirementLevel,
			RequirementCount: 20,
			StatBonus:        map[string]int{models.StatStrength: 3, models.StatAgility: 3, models.StatIntelligence: 3},
			SortOrder:        7,
		},
		{
			ID:                "night_owl",
			Name:              "Night Owl",
			Description:       "Completed a quest deep in the night",
			RequirementType:   models.RequirementClock,
			RequirementTarget: models.ClockWindowNight,
			SortOrder:         8,
		},
		{
			ID:                "early_riser",
			Name:              "Early Riser",
			Description:       "Completed a quest at dawn",
			RequirementType:   models.RequirementClock,
			RequirementTarget: models.ClockWindowDawn,
			SortOrder:         9,
		},
		{
			ID:               "skill_collector",
			Name:             "Skill Collector",
			Description:      "Unlocked 5 skills",
			RequirementType:  models.RequirementSkillsUnlocked,
			RequirementCount: 5,
			StatBonus:        map[string]int{models.StatIntelligence: 3},
			SortOrder:        10,
		},
	}

	for _, title := range titles {
		_, err := db.bunDB.NewInsert().
			Model(&title).
			On("CONFLICT (id) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("description = EXCLUDED.description").
			Set("requirement_type = EXCLUDED.requirement_type").
			Set("requirement_target = EXCLUDED.requirement_target").
			Set("requirement_count = EXCLUDED.requirement_count").
			Set("stat_bonus = EXCLUDED.stat_bonus").
			Set("sort_order = EXCLUDED.sort_order").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert title %s: %w", title.ID, err)
		}
	}

	slog.Info("Title catalog initialization completed",
		slog.Int("total_titles", len(titles)))
	return nil
}

// InitializeItemData seeds the shop inventory.
func (db *DB) InitializeItemData(ctx context.Context) error {
	slog.Info("Initializing shop catalog...")

	items := []models.Item{
		{
			ID:          "stamina_potion",
			Name:        "Stamina Potion",
			Description: "Restores 30 stamina on use",
			Type:        models.ItemTypeConsumable,
			Effect:      map[string]int{models.StatStamina: 30},
			Price:       150,
			Emoji:       "🧪",
		},
		{
			ID:          "healing_draught",
			Name:        "Healing Draught",
			Description: "Restores 50 health on use",
			Type:        models.ItemTypeConsumable,
			Effect:      map[string]int{models.StatHealth: 50},
			Price:       250,
			Emoji:       "❤️",
		},
		{
			ID:          "xp_scroll",
			Name:        "XP Scroll",
			Description: "Grants 200 exp on use",
			Type:        models.ItemTypeConsumable,
			Effect:      map[string]int{models.StatExp: 200},
			Price:       400,
			Emoji:       "📜",
		},
		{
			ID:          "hunter_badge",
			Name:        "Hunter Badge",
			Description: "A badge shown on your profile card",
			Type:        models.ItemTypeCosmetic,
			Price:       500,
			Emoji:       "🎖️",
		},
	}

	for _, item := range items {
		_, err := db.bunDB.NewInsert().
			Model(&item).
			On("CONFLICT (id) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("description = EXCLUDED.description").
			Set("type = EXCLUDED.type").
			Set("effect = EXCLUDED.effect").
			Set("price = EXCLUDED.price").
			Set("emoji = EXCLUDED.emoji").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert item %s: %w", item.ID, err)
		}
	}

	slog.Info("Shop catalog initialization completed",
		slog.Int("total_items", len(items)))
	return nil
}
