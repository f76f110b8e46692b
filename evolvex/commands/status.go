package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/evolvex/evolvex/evolvex"
	"github.com/evolvex/evolvex/evolvex/advisor"
	"github.com/evolvex/evolvex/evolvex/config"
	"github.com/evolvex/evolvex/evolvex/utils"
)

var Status = discord.SlashCommandCreate{
	Name:        "status",
	Description: "Get advice on where to focus next",
}

func StatusHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, stats, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
		}

		var desc strings.Builder

		weaknesses := advisor.Weaknesses(stats)
		if len(weaknesses) == 0 {
			desc.WriteString("💪 Your core stats are balanced. Keep it up!\n")
		} else {
			for _, name := range weaknesses {
				desc.WriteString(fmt.Sprintf("⚠️ %s is lagging behind your other stats\n", utils.FormatStatName(name)))
			}
		}

		if advisor.Burnout(stats) {
			desc.WriteString(fmt.Sprintf("\n🛌 **Burnout risk.** Stamina is at %d/%d. Take a `/rest` before pushing on.\n",
				stats.Stamina, stats.MaxStamina))
		}

		if quest, err := b.Advisor.RecommendQuest(ctx, user.DiscordID, stats); err == nil && quest != nil {
			desc.WriteString(fmt.Sprintf("\n🎯 Suggested quest: **%s** `%s`\n└ ✨ %d EXP · ⚡ %d stamina\n",
				quest.Title, quest.QuestID, quest.ExpReward, quest.StaminaCost))
		}

		if user.StreakCount > 0 {
			desc.WriteString(fmt.Sprintf("\n🔥 Streak: **%d** day%s", user.StreakCount, plural(user.StreakCount)))
			if !user.LastStreakAt.IsZero() {
				desc.WriteString(fmt.Sprintf(" (last activity <t:%d:R>)", user.LastStreakAt.Unix()))
			}
			desc.WriteString("\n")
		} else {
			desc.WriteString("\n🔥 No streak yet. Complete a quest today to start one.\n")
		}

		if count, err := b.QuestService.CompletionsToday(ctx, user.DiscordID, time.Now()); err == nil {
			desc.WriteString(fmt.Sprintf("📜 Quests completed today: **%d**\n", count))
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "📋 Hunter Status",
				Description: desc.String(),
				Color:       config.InfoColor,
			}},
		})
	}
}
