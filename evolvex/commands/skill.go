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
	"github.com/evolvex/evolvex/evolvex/utils"
)

var Skill = discord.SlashCommandCreate{
	Name:        "skill",
	Description: "Unlock and use your skills",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "list",
			Description: "Show the skill tree and your progress",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "unlock",
			Description: "Spend a skill point to unlock a skill",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "skill_id",
					Description: "The skill to unlock",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "use",
			Description: "Use one of your active skills",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "skill_id",
					Description: "The skill to use",
					Required:    true,
				},
			},
		},
	},
}

func SkillHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		if data.SubCommandName == nil {
			return utils.EH.CreateUserError(e, "Missing subcommand")
		}

		switch *data.SubCommandName {
		case "list":
			return skillList(b, e)
		case "unlock":
			return skillUnlock(b, e)
		case "use":
			return skillUse(b, e)
		}
		return utils.EH.CreateUserError(e, "Unknown subcommand")
	}
}

func skillList(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, _, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
	}

	entries, err := b.SkillService.List(ctx, user.DiscordID)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load the skill tree.")
	}

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("🔹 Skill points: **%d**\n\n", user.SkillPoints))
	for _, entry := range entries {
		icon := "🔒"
		if entry.Unlocked {
			icon = skillTypeIcon(entry.Skill.Type)
		}
		desc.WriteString(fmt.Sprintf("%s **%s** `%s`\n", icon, entry.Skill.Name, entry.Skill.ID))
		if entry.Unlocked {
			desc.WriteString(fmt.Sprintf("└ Lv.%d/%d · %s · %s EXP\n",
				entry.Level, entry.Skill.MaxLevel,
				entry.Skill.Description,
				utils.FormatExpLine(entry.Exp, models.SkillExpRequired(entry.Level))))
		} else {
			desc.WriteString(fmt.Sprintf("└ Unlocks at level %d · costs %d point%s · %s\n",
				entry.Skill.UnlockLevel, entry.Skill.UnlockCost, plural(entry.Skill.UnlockCost),
				entry.Skill.Description))
		}
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "🌳 Skill Tree",
			Description: desc.String(),
			Color:       config.EmbedDefaultColor,
		}},
	})
}

func skillUnlock(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	skillID := e.SlashCommandInteractionData().String("skill_id")

	user, _, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
	}

	skill, err := b.SkillService.Unlock(ctx, user, skillID)
	if err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("%s Unlocked **%s**! %d skill point%s remaining.",
		skillTypeIcon(skill.Type), skill.Name, user.SkillPoints, plural(user.SkillPoints)))
}

func skillUse(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	skillID := e.SlashCommandInteractionData().String("skill_id")

	user, stats, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
	}

	result, err := b.SkillService.Use(ctx, user, stats, skillID)
	if err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("⚡ Used **%s** (Lv.%d)\n\n", result.Skill.Name, result.SkillLevel))
	for name, gain := range result.Effects {
		desc.WriteString(fmt.Sprintf("%s +%d\n", utils.FormatStatName(name), gain))
	}
	if result.Skill.StaminaCost > 0 {
		desc.WriteString(fmt.Sprintf("⚡ Stamina: %d/%d (-%d)\n", result.StaminaLeft, stats.MaxStamina, result.Skill.StaminaCost))
	}
	if result.MasteryUp {
		desc.WriteString(fmt.Sprintf("\n📈 **%s** advanced to mastery level %d!\n", result.Skill.Name, result.SkillLevel))
	}
	if result.RealWorld != nil {
		if result.RealWorld.Duration > 0 {
			desc.WriteString(fmt.Sprintf("\n🎧 %s (%s)\n", result.RealWorld.Label, utils.FormatDuration(time.Duration(result.RealWorld.Duration)*time.Second)))
		} else {
			desc.WriteString(fmt.Sprintf("\n🎧 %s\n", result.RealWorld.Label))
		}
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "Skill Used",
			Description: desc.String(),
			Color:       config.SuccessColor,
		}},
	})
}

func skillTypeIcon(t string) string {
	if t == models.SkillTypePassive {
		return "🛡️"
	}
	return "✨"
}
