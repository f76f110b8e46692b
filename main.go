package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/evolvex/evolvex/evolvex"
	"github.com/evolvex/evolvex/evolvex/advisor"
	"github.com/evolvex/evolvex/evolvex/commands"
	"github.com/evolvex/evolvex/evolvex/database"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
	"github.com/evolvex/evolvex/evolvex/dungeons"
	"github.com/evolvex/evolvex/evolvex/handlers"
	"github.com/evolvex/evolvex/evolvex/logger"
	"github.com/evolvex/evolvex/evolvex/progression"
	"github.com/evolvex/evolvex/evolvex/quests"
	"github.com/evolvex/evolvex/evolvex/services"
	"github.com/evolvex/evolvex/evolvex/skills"
	"github.com/evolvex/evolvex/evolvex/titles"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	shouldSeedData := flag.Bool("seed-data", false, "Whether to seed quest, skill, title and item catalogs on startup")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := evolvex.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))

	slog.Info("Starting EvolveX Discord Bot",
		slog.String("version", version),
		slog.String("commit", commit))

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	slog.Info("Initializing database schema...")
	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	if *shouldSeedData {
		slog.Info("Seeding game catalogs...")
		for name, seed := range map[string]func(context.Context) error{
			"quests": db.InitializeQuestData,
			"skills": db.InitializeSkillData,
			"titles": db.InitializeTitleData,
			"items":  db.InitializeItemData,
		} {
			if err := seed(ctx); err != nil {
				slog.Error("Failed to seed catalog",
					slog.String("catalog", name),
					slog.String("error", err.Error()))
				os.Exit(-1)
			}
		}
		slog.Info("Game catalogs seeded successfully")
	}

	b := evolvex.New(*cfg, version, commit)
	b.DB = db

	b.SpacesService = services.NewSpacesService(
		cfg.Spaces.Key,
		cfg.Spaces.Secret,
		cfg.Spaces.Region,
		cfg.Spaces.Bucket,
		cfg.Spaces.Root,
	)
	b.ProfileImageService = services.NewProfileImageService()

	b.UserRepository = repositories.NewUserRepository(db.BunDB())
	b.StatsRepository = repositories.NewStatsRepository(db.BunDB())
	b.QuestRepository = repositories.NewQuestRepository(db.BunDB())
	b.SkillRepository = repositories.NewSkillRepository(db.BunDB())
	b.TitleRepository = repositories.NewTitleRepository(db.BunDB())
	b.DungeonRepository = repositories.NewDungeonRepository(db.BunDB())
	b.ItemRepository = repositories.NewItemRepository(db.BunDB())
	b.ProgressRepository = repositories.NewProgressRepository(db.BunDB())

	b.ProgressionService = progression.NewService(progression.DefaultConfig(), b.UserRepository, b.StatsRepository, b.ProgressRepository)
	b.QuestService = quests.NewService(b.QuestRepository, b.ProgressRepository, b.ProgressionService)
	b.SkillService = skills.NewService(b.SkillRepository, b.ProgressRepository, b.UserRepository, b.StatsRepository, b.ProgressionService)
	b.TitleEvaluator = titles.NewEvaluator(b.TitleRepository, b.QuestRepository, b.SkillRepository, b.ProgressRepository)
	b.DungeonManager = dungeons.NewManager(b.DungeonRepository, b.UserRepository, b.StatsRepository, b.ProgressRepository, b.ProgressionService)
	b.Advisor = advisor.New(b.QuestRepository, b.UserRepository)
	b.ProfileService = services.NewProfileService(b.QuestRepository, b.TitleRepository, b.SkillService, b.TitleEvaluator, b.DungeonManager, b.Advisor)
	b.ShopService = services.NewShopService(b.ItemRepository, b.UserRepository, b.StatsRepository, b.ProgressRepository, b.ProgressionService)

	// Background sweep for expired and stale dungeon sessions
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()
	go b.DungeonManager.StartSweeper(sweepCtx)

	h := handler.New()

	// System commands
	h.Command("/version", commands.VersionHandler(b))
	h.Command("/init", handlers.WrapWithLogging("init", commands.InitHandler(b)))

	// Progression commands
	h.Command("/profile", handlers.WrapWithLogging("profile", commands.ProfileHandler(b)))
	h.Command("/quest", handlers.WrapWithLogging("quest", commands.QuestHandler(b)))
	h.Command("/skill", handlers.WrapWithLogging("skill", commands.SkillHandler(b)))
	h.Command("/titles", handlers.WrapWithLogging("titles", commands.TitlesHandler(b)))
	h.Command("/status", handlers.WrapWithLogging("status", commands.StatusHandler(b)))
	h.Command("/rest", handlers.WrapWithLogging("rest", commands.RestHandler(b)))
	h.Command("/leaderboard", handlers.WrapWithLogging("leaderboard", commands.LeaderboardHandler(b)))

	// Dungeon commands
	h.Command("/dungeon", handlers.WrapWithLogging("dungeon", commands.DungeonHandler(b)))

	// Economy commands
	h.Command("/shop", handlers.WrapWithLogging("shop", commands.ShopHandler(b)))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "bot_setup"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("component", "command_sync"),
				slog.String("status", "failed"),
			)
		}
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = b.Client.OpenGateway(ctx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("component", "gateway"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...")
}
