package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Migrator imports player data from the legacy MongoDB deployment
// into Postgres. Catalogs (quests, skills, titles, items) come from
// the seed data, only per-player state moves over.
type Migrator struct {
	pgDB      *bun.DB
	mongoDB   *mongo.Database
	batchSize int
	stats     MigrationStats
	collNames map[string]string
}

func NewMigrator(pgDB *bun.DB, client *mongo.Client, dbName string) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		mongoDB:   client.Database(dbName),
		batchSize: 1000,
		stats: MigrationStats{
			Tables:    make(map[string]*TableStats),
			StartTime: time.Now(),
		},
		collNames: map[string]string{
			"hunters":   "hunters",
			"questlogs": "questlogs",
			"skills":    "hunterskills",
			"titles":    "huntertitles",
		},
	}
}

// SetBatchSize overrides the default batch size for inserts.
func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

// SetCollectionName overrides a legacy collection name.
func (m *Migrator) SetCollectionName(kind, name string) {
	if kind != "" && name != "" {
		m.collNames[kind] = name
	}
}

func (m *Migrator) table(name string) *TableStats {
	ts, ok := m.stats.Tables[name]
	if !ok {
		ts = &TableStats{}
		m.stats.Tables[name] = ts
	}
	return ts
}

// MigrateAll moves every legacy collection in dependency order.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	slog.Info("Starting legacy MongoDB migration")
	m.stats.StartTime = time.Now()

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"hunters", m.MigrateHunters},
		{"quest_completions", m.MigrateQuestLogs},
		{"user_skills", m.MigrateHunterSkills},
		{"user_titles", m.MigrateHunterTitles},
	}

	for _, step := range steps {
		slog.Info("Starting migration step", slog.String("step", step.name))
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("migration failed at step %s: %w", step.name, err)
		}
		slog.Info("Completed migration step", slog.String("step", step.name))
	}

	m.stats.EndTime = time.Now()
	m.logFinalStats()
	return nil
}

// MigrateHunters imports legacy hunter documents as users plus stats rows.
func (m *Migrator) MigrateHunters(ctx context.Context) error {
	cur, err := m.mongoDB.Collection(m.collNames["hunters"]).Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query hunters: %w", err)
	}
	defer cur.Close(ctx)

	ts := m.table("hunters")
	seen := make(map[string]bool)

	var users []*models.User
	var stats []*models.Stats

	for cur.Next(ctx) {
		var mh MongoHunter
		if err := cur.Decode(&mh); err != nil {
			ts.Skipped++
			continue
		}
		ts.Read++

		user := convertHunter(mh)
		if user.DiscordID == "" {
			ts.Skipped++
			continue
		}
		if seen[user.DiscordID] {
			ts.Skipped++
			slog.Warn("Duplicate Discord ID in legacy data, keeping first record",
				slog.String("discord_id", user.DiscordID))
			continue
		}
		seen[user.DiscordID] = true

		users = append(users, user)
		stats = append(stats, convertStats(mh))

		if len(users) >= m.batchSize {
			if err := m.flushHunters(ctx, users, stats); err != nil {
				return err
			}
			ts.Imported += len(users)
			users = users[:0]
			stats = stats[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(users) > 0 {
		if err := m.flushHunters(ctx, users, stats); err != nil {
			return err
		}
		ts.Imported += len(users)
	}
	return nil
}

func (m *Migrator) flushHunters(ctx context.Context, users []*models.User, stats []*models.Stats) error {
	start := time.Now()

	// Users and their stats land in the same transaction so a partial
	// batch never leaves a hunter without a stat row.
	err := m.pgDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().
			Model(&users).
			On("CONFLICT (discord_id) DO UPDATE").
			Set("username = EXCLUDED.username").
			Set("level = EXCLUDED.level").
			Set("exp = EXCLUDED.exp").
			Set("exp_required = EXCLUDED.exp_required").
			Set("skill_points = EXCLUDED.skill_points").
			Set("gold = EXCLUDED.gold").
			Set("streak_count = EXCLUDED.streak_count").
			Set("last_streak_at = EXCLUDED.last_streak_at").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx); err != nil {
			return fmt.Errorf("batch insert of users failed: %w", err)
		}

		if _, err := tx.NewInsert().
			Model(&stats).
			On("CONFLICT (discord_id) DO UPDATE").
			Set("strength = EXCLUDED.strength").
			Set("agility = EXCLUDED.agility").
			Set("intelligence = EXCLUDED.intelligence").
			Set("stamina = EXCLUDED.stamina").
			Set("max_stamina = EXCLUDED.max_stamina").
			Set("health = EXCLUDED.health").
			Set("max_health = EXCLUDED.max_health").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx); err != nil {
			return fmt.Errorf("batch insert of stats failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Hunter batch imported",
		slog.Int("count", len(users)),
		slog.Duration("took", time.Since(start)))
	return nil
}

// MigrateQuestLogs imports quest completion history.
func (m *Migrator) MigrateQuestLogs(ctx context.Context) error {
	cur, err := m.mongoDB.Collection(m.collNames["questlogs"]).Find(ctx, bson.D{})
	if err != nil {
		slog.Warn("questlogs collection not found, skipping")
		return nil
	}
	defer cur.Close(ctx)

	ts := m.table("quest_completions")
	var batch []*models.QuestCompletion

	for cur.Next(ctx) {
		var mq MongoQuestLog
		if err := cur.Decode(&mq); err != nil {
			ts.Skipped++
			continue
		}
		ts.Read++

		completion := convertQuestLog(mq)
		if completion.DiscordID == "" || completion.QuestID == "" {
			ts.Skipped++
			continue
		}
		batch = append(batch, completion)

		if len(batch) >= m.batchSize {
			if _, err := m.pgDB.NewInsert().Model(&batch).Exec(ctx); err != nil {
				return fmt.Errorf("batch insert of quest completions failed: %w", err)
			}
			ts.Imported += len(batch)
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if _, err := m.pgDB.NewInsert().Model(&batch).Exec(ctx); err != nil {
			return fmt.Errorf("batch insert of quest completions failed: %w", err)
		}
		ts.Imported += len(batch)
	}
	return nil
}

// MigrateHunterSkills imports unlocked skills with their mastery.
func (m *Migrator) MigrateHunterSkills(ctx context.Context) error {
	cur, err := m.mongoDB.Collection(m.collNames["skills"]).Find(ctx, bson.D{})
	if err != nil {
		slog.Warn("hunterskills collection not found, skipping")
		return nil
	}
	defer cur.Close(ctx)

	ts := m.table("user_skills")
	var batch []*models.UserSkill

	for cur.Next(ctx) {
		var ms MongoHunterSkill
		if err := cur.Decode(&ms); err != nil {
			ts.Skipped++
			continue
		}
		ts.Read++

		us := convertHunterSkill(ms)
		if us.DiscordID == "" || us.SkillID == "" {
			ts.Skipped++
			continue
		}
		batch = append(batch, us)

		if len(batch) >= m.batchSize {
			if err := m.flushUserSkills(ctx, batch); err != nil {
				return err
			}
			ts.Imported += len(batch)
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if err := m.flushUserSkills(ctx, batch); err != nil {
			return err
		}
		ts.Imported += len(batch)
	}
	return nil
}

func (m *Migrator) flushUserSkills(ctx context.Context, batch []*models.UserSkill) error {
	_, err := m.pgDB.NewInsert().
		Model(&batch).
		On("CONFLICT (discord_id, skill_id) DO UPDATE").
		Set("level = EXCLUDED.level").
		Set("exp = EXCLUDED.exp").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("batch insert of user skills failed: %w", err)
	}
	return nil
}

// MigrateHunterTitles imports earned titles.
func (m *Migrator) MigrateHunterTitles(ctx context.Context) error {
	cur, err := m.mongoDB.Collection(m.collNames["titles"]).Find(ctx, bson.D{})
	if err != nil {
		slog.Warn("huntertitles collection not found, skipping")
		return nil
	}
	defer cur.Close(ctx)

	ts := m.table("user_titles")
	var batch []*models.UserTitle

	for cur.Next(ctx) {
		var mt MongoHunterTitle
		if err := cur.Decode(&mt); err != nil {
			ts.Skipped++
			continue
		}
		ts.Read++

		ut := convertHunterTitle(mt)
		if ut.DiscordID == "" || ut.TitleID == "" {
			ts.Skipped++
			continue
		}
		batch = append(batch, ut)

		if len(batch) >= m.batchSize {
			if err := m.flushUserTitles(ctx, batch); err != nil {
				return err
			}
			ts.Imported += len(batch)
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if err := m.flushUserTitles(ctx, batch); err != nil {
			return err
		}
		ts.Imported += len(batch)
	}
	return nil
}

func (m *Migrator) flushUserTitles(ctx context.Context, batch []*models.UserTitle) error {
	_, err := m.pgDB.NewInsert().
		Model(&batch).
		On("CONFLICT (discord_id, title_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("batch insert of user titles failed: %w", err)
	}
	return nil
}

func (m *Migrator) logFinalStats() {
	for name, ts := range m.stats.Tables {
		slog.Info("Migration table summary",
			slog.String("table", name),
			slog.Int("read", ts.Read),
			slog.Int("imported", ts.Imported),
			slog.Int("skipped", ts.Skipped))
	}
	slog.Info("Migration completed",
		slog.Duration("took", m.stats.EndTime.Sub(m.stats.StartTime)))
}
