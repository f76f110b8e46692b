package evolvex

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"
	"github.com/evolvex/evolvex/evolvex/advisor"
	"github.com/evolvex/evolvex/evolvex/database"
	"github.com/evolvex/evolvex/evolvex/database/repositories"
	"github.com/evolvex/evolvex/evolvex/dungeons"
	"github.com/evolvex/evolvex/evolvex/progression"
	"github.com/evolvex/evolvex/evolvex/quests"
	"github.com/evolvex/evolvex/evolvex/services"
	"github.com/evolvex/evolvex/evolvex/skills"
	"github.com/evolvex/evolvex/evolvex/titles"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB

	UserRepository     repositories.UserRepository
	StatsRepository    repositories.StatsRepository
	QuestRepository    repositories.QuestRepository
	SkillRepository    repositories.SkillRepository
	TitleRepository    repositories.TitleRepository
	DungeonRepository  repositories.DungeonRepository
	ItemRepository     repositories.ItemRepository
	ProgressRepository repositories.ProgressRepository

	ProgressionService  *progression.Service
	QuestService        *quests.Service
	SkillService        *skills.Service
	TitleEvaluator      *titles.Evaluator
	DungeonManager      *dungeons.Manager
	Advisor             *advisor.Advisor
	ProfileService      *services.ProfileService
	ShopService         *services.ShopService
	SpacesService       *services.SpacesService
	ProfileImageService *services.ProfileImageService
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("EvolveX is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithWatchingActivity("hunters level up"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}
