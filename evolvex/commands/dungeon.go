package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/evolvex/evolvex/evolvex"
	"github.com/evolvex/evolvex/evolvex/config"
	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/dungeons"
	"github.com/evolvex/evolvex/evolvex/utils"
)

var Dungeon = discord.SlashCommandCreate{
	Name:        "dungeon",
	Description: "Enter timed boss sessions for big rewards",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "enter",
			Description: "Open a dungeon gate",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "rank",
					Description: "Dungeon rank",
					Required:    true,
					Choices: []discord.ApplicationCommandOptionChoiceString{
						{Name: "E-Rank", Value: models.DungeonRankE},
						{Name: "D-Rank", Value: models.DungeonRankD},
						{Name: "C-Rank", Value: models.DungeonRankC},
						{Name: "B-Rank", Value: models.DungeonRankB},
						{Name: "A-Rank", Value: models.DungeonRankA},
						{Name: "S-Rank", Value: models.DungeonRankS},
					},
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "strike",
			Description: "Report progress as damage against the boss",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "damage",
					Description: "Damage dealt",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "clear",
			Description: "Claim rewards for a downed boss",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "flee",
			Description: "Abandon the dungeon and take the penalty",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "status",
			Description: "Check your active dungeon",
		},
	},
}

func DungeonHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		if data.SubCommandName == nil {
			return utils.EH.CreateUserError(e, "Missing subcommand")
		}

		switch *data.SubCommandName {
		case "enter":
			return dungeonEnter(b, e)
		case "strike":
			return dungeonStrike(b, e)
		case "clear":
			return dungeonClear(b, e)
		case "flee":
			return dungeonFlee(b, e)
		case "status":
			return dungeonStatus(b, e)
		}
		return utils.EH.CreateUserError(e, "Unknown subcommand")
	}
}

func dungeonEnter(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rank := e.SlashCommandInteractionData().String("rank")

	user, _, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
	}

	session, err := b.DungeonManager.Enter(ctx, user, rank)
	if err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	cfg, _ := dungeons.GetRank(rank)
	desc := fmt.Sprintf("⚔️ **%s-Rank Gate** opened!\n\n"+
		"👹 Boss HP: **%s**\n"+
		"✨ Reward: %s EXP · 🪙 %d gold\n"+
		"⏳ Timer: %s (breach at <t:%d:t>)\n\n"+
		"Report progress with `/dungeon strike`.",
		session.Rank,
		utils.FormatNumber(int64(session.BossMaxHP)),
		utils.FormatNumber(session.ExpReward), cfg.GoldReward,
		utils.FormatDuration(cfg.Duration), session.ExpiresAt.Unix())

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "Dungeon Entered",
			Description: desc,
			Color:       config.DungeonColor,
		}},
	})
}

func dungeonStrike(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	damage := e.SlashCommandInteractionData().Int("damage")

	session, err := b.DungeonManager.Strike(ctx, e.User().ID.String(), damage)
	if err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("🗡️ You dealt **%d** damage!\n\n", damage))
	desc.WriteString(fmt.Sprintf("%s\n👹 Boss HP: %s\n",
		utils.ProgressBar(int64(session.BossCurrentHP), int64(session.BossMaxHP), 12),
		utils.FormatExpLine(int64(session.BossCurrentHP), int64(session.BossMaxHP))))
	if session.BossCurrentHP == 0 {
		desc.WriteString("\n💀 The boss is down! Claim your rewards with `/dungeon clear`.")
	} else if session.Breached {
		desc.WriteString("\n⚠️ The timer has breached. Finish the boss or `/dungeon flee`.")
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       fmt.Sprintf("%s-Rank Dungeon", session.Rank),
			Description: desc.String(),
			Color:       config.DungeonColor,
		}},
	})
}

func dungeonClear(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, stats, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
	}

	result, err := b.DungeonManager.Complete(ctx, user, stats)
	if err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	awarded, _ := b.TitleEvaluator.Evaluate(ctx, user, stats)

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("🏆 **%s-Rank dungeon cleared!**\n\n", result.Session.Rank))
	desc.WriteString(fmt.Sprintf("✨ +%s EXP · 🪙 +%d gold\n", utils.FormatNumber(result.Session.ExpReward), result.GoldGained))
	color := config.SuccessColor
	if result.Progression.LeveledUp() {
		color = config.LevelUpColor
		desc.WriteString(fmt.Sprintf("\n🎉 **LEVEL UP!** You are now level %d\n", result.Progression.NewLevel))
	}
	desc.WriteString(fmt.Sprintf("\n%s %s",
		utils.ProgressBar(result.Progression.CurrentExp, result.Progression.RequiredExp, 12),
		utils.FormatExpLine(result.Progression.CurrentExp, result.Progression.RequiredExp)))
	for _, title := range awarded {
		desc.WriteString(fmt.Sprintf("\n🏅 Title earned: **%s**", title.Name))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "Dungeon Cleared",
			Description: desc.String(),
			Color:       color,
		}},
	})
}

func dungeonFlee(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, stats, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
	}

	session, penalty, err := b.DungeonManager.Flee(ctx, user, stats)
	if err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title: "Fled the Dungeon",
			Description: fmt.Sprintf("🏃 You fled the **%s-Rank** dungeon.\n\n"+
				"💔 -%d health (%d/%d remaining)",
				session.Rank, penalty, stats.Health, stats.MaxHealth),
			Color: config.ErrorColor,
		}},
	})
}

func dungeonStatus(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := b.DungeonManager.Active(ctx, e.User().ID.String())
	if err != nil {
		return utils.EH.CreateInfoEmbed(e, "No active dungeon. Open a gate with `/dungeon enter`.")
	}

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("%s\n👹 Boss HP: %s\n\n",
		utils.ProgressBar(int64(session.BossCurrentHP), int64(session.BossMaxHP), 12),
		utils.FormatExpLine(int64(session.BossCurrentHP), int64(session.BossMaxHP))))
	if session.Breached {
		desc.WriteString("⚠️ The timer breached at <t:" + fmt.Sprint(session.ExpiresAt.Unix()) + ":t>.")
	} else {
		desc.WriteString(fmt.Sprintf("⏳ Breach at <t:%d:t> (<t:%d:R>)", session.ExpiresAt.Unix(), session.ExpiresAt.Unix()))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       fmt.Sprintf("%s-Rank Dungeon", session.Rank),
			Description: desc.String(),
			Color:       config.DungeonColor,
		}},
	})
}
