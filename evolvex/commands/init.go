package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/evolvex/evolvex/evolvex"
	"github.com/evolvex/evolvex/evolvex/utils"
)

var Init = discord.SlashCommandCreate{
	Name:        "init",
	Description: "Initialize database tables and seed game data",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionBool{
			Name:        "reset",
			Description: "Wipe all player data first",
		},
	},
}

func InitHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()
		defer func() {
			slog.Info("Command completed",
				slog.String("type", "cmd"),
				slog.String("name", "init"),
				slog.Duration("total_time", time.Since(start)),
			)
		}()

		if err := e.DeferCreateMessage(false); err != nil {
			return fmt.Errorf("failed to defer message: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if e.SlashCommandInteractionData().Bool("reset") {
			if err := b.DB.ResetAppTables(ctx); err != nil {
				return initFailed(e, "reset", err)
			}
		}

		if err := b.DB.InitializeSchema(ctx); err != nil {
			return initFailed(e, "schema", err)
		}
		if err := b.DB.InitializeQuestData(ctx); err != nil {
			return initFailed(e, "quest seed", err)
		}
		if err := b.DB.InitializeSkillData(ctx); err != nil {
			return initFailed(e, "skill seed", err)
		}
		if err := b.DB.InitializeTitleData(ctx); err != nil {
			return initFailed(e, "title seed", err)
		}
		if err := b.DB.InitializeItemData(ctx); err != nil {
			return initFailed(e, "item seed", err)
		}

		inlineTrue := true
		_, err := e.UpdateInteractionResponse(discord.MessageUpdate{
			Embeds: &[]discord.Embed{
				{
					Title:       "✅ Database Initialized",
					Description: "All tables created and game data seeded.",
					Color:       0x00FF00,
					Fields: []discord.EmbedField{
						{
							Name: "Tables",
							Value: "• users\n• user_stats\n• quests\n• quest_completions\n" +
								"• skills\n• user_skills\n• titles\n• user_titles\n" +
								"• dungeon_sessions\n• items\n• user_items\n• progress_logs",
							Inline: &inlineTrue,
						},
						{
							Name:   "Initialized At",
							Value:  fmt.Sprintf("<t:%d:F>", time.Now().Unix()),
							Inline: &inlineTrue,
						},
					},
					Footer: &discord.EmbedFooter{
						Text: "Database Initialization System",
					},
				},
			},
		})
		return err
	}
}

func initFailed(e *handler.CommandEvent, stage string, err error) error {
	_, uerr := e.UpdateInteractionResponse(discord.MessageUpdate{
		Embeds: &[]discord.Embed{
			{
				Title:       "❌ Database Initialization Failed",
				Description: fmt.Sprintf("```diff\n- Stage: %s\n- Error: %s\n```", stage, err.Error()),
				Color:       0xFF0000,
			},
		},
	})
	if uerr != nil {
		return uerr
	}
	return err
}

var Version = discord.SlashCommandCreate{
	Name:        "version",
	Description: "Show bot version",
}

func VersionHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}
		_, err := e.UpdateInteractionResponse(discord.MessageUpdate{
			Content: utils.Ptr(fmt.Sprintf("Version: %s\nCommit: %s", b.Version, b.Commit)),
		})
		return err
	}
}
