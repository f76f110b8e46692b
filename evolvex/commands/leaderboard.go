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
	"github.com/evolvex/evolvex/evolvex/utils"
)

var Leaderboard = discord.SlashCommandCreate{
	Name:        "leaderboard",
	Description: "Top hunters by level",
}

func LeaderboardHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		top, err := b.UserRepository.GetTopUsers(ctx, config.DefaultPageSize)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load the leaderboard.")
		}
		if len(top) == 0 {
			return utils.EH.CreateInfoEmbed(e, "Nobody has leveled up yet. Be the first!")
		}

		medals := []string{"🥇", "🥈", "🥉"}
		var desc strings.Builder
		for i, user := range top {
			marker := fmt.Sprintf("`#%d`", i+1)
			if i < len(medals) {
				marker = medals[i]
			}
			desc.WriteString(fmt.Sprintf("%s **%s** · Level %d · %s EXP\n",
				marker, user.Username, user.Level, utils.FormatNumber(user.Exp)))
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🏆 Hunter Leaderboard",
				Description: desc.String(),
				Color:       config.LevelUpColor,
			}},
		})
	}
}
