package commands

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
	"github.com/evolvex/evolvex/evolvex"
	"github.com/evolvex/evolvex/evolvex/config"
	"github.com/evolvex/evolvex/evolvex/database/models"
	"github.com/evolvex/evolvex/evolvex/utils"
)

var Quest = discord.SlashCommandCreate{
	Name:        "quest",
	Description: "Take on quests and earn experience",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "complete",
			Description: "Report a finished quest and claim its rewards",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "quest_id",
					Description: "The quest you finished",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "list",
			Description: "Browse the quest board",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "search",
					Description: "Fuzzy search by quest title",
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "add",
			Description: "Create a custom quest",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "quest_id",
					Description: "Unique id for the quest",
					Required:    true,
				},
				discord.ApplicationCommandOptionString{
					Name:        "title",
					Description: "Quest title",
					Required:    true,
				},
				discord.ApplicationCommandOptionInt{
					Name:        "exp",
					Description: "Experience reward",
					Required:    true,
				},
				discord.ApplicationCommandOptionString{
					Name:        "description",
					Description: "What to do",
				},
				discord.ApplicationCommandOptionInt{
					Name:        "stamina",
					Description: "Stamina cost",
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "edit",
			Description: "Edit one of your custom quests",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "quest_id",
					Description: "The quest to edit",
					Required:    true,
				},
				discord.ApplicationCommandOptionString{
					Name:        "title",
					Description: "New title",
				},
				discord.ApplicationCommandOptionInt{
					Name:        "exp",
					Description: "New experience reward",
				},
				discord.ApplicationCommandOptionInt{
					Name:        "stamina",
					Description: "New stamina cost",
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "delete",
			Description: "Delete one of your custom quests",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "quest_id",
					Description: "The quest to delete",
					Required:    true,
				},
			},
		},
	},
}

func QuestHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		if data.SubCommandName == nil {
			return utils.EH.CreateUserError(e, "Missing subcommand")
		}

		switch *data.SubCommandName {
		case "complete":
			return questComplete(b, e)
		case "list":
			return questList(b, e)
		case "add":
			return questAdd(b, e)
		case "edit":
			return questEdit(b, e)
		case "delete":
			return questDelete(b, e)
		}
		return utils.EH.CreateUserError(e, "Unknown subcommand")
	}
}

func questComplete(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	questID := e.SlashCommandInteractionData().String("quest_id")

	user, stats, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
	}

	result, err := b.QuestService.Complete(ctx, user, stats, questID)
	if err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	// Streak and titles react to the completion
	streak, _ := b.Advisor.TouchStreak(ctx, user, time.Now())
	awarded, _ := b.TitleEvaluator.Evaluate(ctx, user, stats)

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("**%s** complete!\n\n", result.Quest.Title))
	desc.WriteString(fmt.Sprintf("✨ +%s EXP", utils.FormatNumber(result.Quest.ExpReward)))
	if result.GoldGained > 0 {
		desc.WriteString(fmt.Sprintf(" · 🪙 +%d gold", result.GoldGained))
	}
	desc.WriteString("\n")
	for name, gain := range result.StatGains {
		desc.WriteString(fmt.Sprintf("%s +%d\n", utils.FormatStatName(name), gain))
	}
	desc.WriteString(fmt.Sprintf("⚡ Stamina left: %d/%d\n", result.StaminaLeft, stats.MaxStamina))

	color := config.SuccessColor
	if result.Progression.LeveledUp() {
		color = config.LevelUpColor
		desc.WriteString(fmt.Sprintf("\n🎉 **LEVEL UP!** You are now level %d (+%d skill point%s)\n",
			result.Progression.NewLevel,
			result.Progression.SkillPointsGained,
			plural(result.Progression.SkillPointsGained)))
	}
	desc.WriteString(fmt.Sprintf("\n%s %s",
		utils.ProgressBar(result.Progression.CurrentExp, result.Progression.RequiredExp, 12),
		utils.FormatExpLine(result.Progression.CurrentExp, result.Progression.RequiredExp)))

	if streak.Changed && streak.Count > 1 {
		desc.WriteString(fmt.Sprintf("\n🔥 %d day streak", streak.Count))
	}
	for _, title := range awarded {
		desc.WriteString(fmt.Sprintf("\n🏅 Title earned: **%s**", title.Name))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "Quest Complete",
			Description: desc.String(),
			Color:       color,
		}},
	})
}

func questList(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	search := e.SlashCommandInteractionData().String("search")

	questList, err := b.QuestService.ListVisible(ctx, e.User().ID.String(), search)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load the quest board.")
	}
	if len(questList) == 0 {
		if search != "" {
			return utils.EH.CreateNotFoundError(e, "Quest", search)
		}
		return utils.EH.CreateInfoEmbed(e, "The quest board is empty. An admin can seed it with `/init`.")
	}

	totalPages := int(math.Ceil(float64(len(questList)) / float64(config.QuestsPerPage)))

	return b.Paginator.Create(e.Respond, paginator.Pages{
		ID:      e.ID().String(),
		Creator: e.User().ID,
		PageFunc: func(page int, embed *discord.EmbedBuilder) {
			start := page * config.QuestsPerPage
			end := min(start+config.QuestsPerPage, len(questList))

			var description strings.Builder
			if search != "" {
				description.WriteString(fmt.Sprintf("🔍 `%s`\n\n", search))
			}
			for _, q := range questList[start:end] {
				description.WriteString(fmt.Sprintf("**%s** `%s`\n", q.Title, q.QuestID))
				description.WriteString(fmt.Sprintf("└ %s · ✨ %d EXP · ⚡ %d stamina\n",
					questCategoryLabel(q), q.ExpReward, q.StaminaCost))
			}

			embed.
				SetTitle("📜 Quest Board").
				SetDescription(description.String()).
				SetColor(config.EmbedDefaultColor).
				SetFooterText(fmt.Sprintf("Page %d/%d · %d quests", page+1, totalPages, len(questList)))
		},
		Pages:      totalPages,
		ExpireMode: paginator.ExpireModeAfterLastUsage,
	})
}

func questAdd(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data := e.SlashCommandInteractionData()
	quest := &models.Quest{
		QuestID:     strings.ToLower(strings.TrimSpace(data.String("quest_id"))),
		Title:       data.String("title"),
		Description: data.String("description"),
		Difficulty:  models.QuestDifficultyEasy,
		ExpReward:   int64(data.Int("exp")),
		StaminaCost: data.Int("stamina"),
	}

	if quest.QuestID == "" || quest.Title == "" {
		return utils.EH.CreateUserError(e, "Quest id and title are required")
	}
	if quest.ExpReward < 1 || quest.ExpReward > 1000 {
		return utils.EH.CreateUserError(e, "Exp reward must be between 1 and 1000")
	}
	if quest.StaminaCost < 0 || quest.StaminaCost > 100 {
		return utils.EH.CreateUserError(e, "Stamina cost must be between 0 and 100")
	}

	if err := b.QuestService.CreateCustom(ctx, e.User().ID.String(), quest); err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("📜 Custom quest **%s** created (`%s`)", quest.Title, quest.QuestID))
}

func questEdit(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data := e.SlashCommandInteractionData()
	questID := data.String("quest_id")

	existing, err := b.QuestRepository.GetByQuestID(ctx, questID)
	if err != nil {
		return utils.EH.CreateNotFoundError(e, "Quest", questID)
	}

	edited := *existing
	if title, ok := data.OptString("title"); ok {
		edited.Title = title
	}
	if exp, ok := data.OptInt("exp"); ok {
		edited.ExpReward = int64(exp)
	}
	if stamina, ok := data.OptInt("stamina"); ok {
		edited.StaminaCost = stamina
	}

	if err := b.QuestService.UpdateCustom(ctx, e.User().ID.String(), &edited); err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("✏️ Quest `%s` updated", questID))
}

func questDelete(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	questID := e.SlashCommandInteractionData().String("quest_id")
	if err := b.QuestService.DeleteCustom(ctx, e.User().ID.String(), questID); err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🗑️ Quest `%s` deleted", questID))
}

func questCategoryLabel(q *models.Quest) string {
	switch q.Category {
	case models.QuestCategoryPhysical:
		return "💪 Physical"
	case models.QuestCategorySystem:
		return "🧠 System"
	case models.QuestCategoryCustom:
		return "✏️ Custom"
	}
	return q.Category
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
