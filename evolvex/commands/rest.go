package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/evolvex/evolvex/evolvex"
	"github.com/evolvex/evolvex/evolvex/utils"
)

var Rest = discord.SlashCommandCreate{
	Name:        "rest",
	Description: "Take a break and recover stamina",
}

func RestHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, stats, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
		}

		recovered, err := b.ProgressionService.Rest(ctx, user, stats, 0)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to rest. Please try again later.")
		}

		if recovered == 0 {
			return utils.EH.CreateInfoEmbed(e, fmt.Sprintf("😌 You are already fully rested (⚡ %d/%d).",
				stats.Stamina, stats.MaxStamina))
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("😴 You rested and recovered **%d** stamina (⚡ %d/%d).",
			recovered, stats.Stamina, stats.MaxStamina))
	}
}
