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

var Shop = discord.SlashCommandCreate{
	Name:        "shop",
	Description: "Spend your gold",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "list",
			Description: "Browse the shop",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "buy",
			Description: "Buy an item",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "item_id",
					Description: "The item to buy",
					Required:    true,
				},
				discord.ApplicationCommandOptionInt{
					Name:        "amount",
					Description: "How many (default 1)",
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "inventory",
			Description: "Show what you own",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "use",
			Description: "Consume an item from your inventory",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "item_id",
					Description: "The item to use",
					Required:    true,
				},
			},
		},
	},
}

func ShopHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		if data.SubCommandName == nil {
			return utils.EH.CreateUserError(e, "Missing subcommand")
		}

		switch *data.SubCommandName {
		case "list":
			return shopList(b, e)
		case "buy":
			return shopBuy(b, e)
		case "inventory":
			return shopInventory(b, e)
		case "use":
			return shopUse(b, e)
		}
		return utils.EH.CreateUserError(e, "Unknown subcommand")
	}
}

func shopList(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, _, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
	}

	items, err := b.ShopService.Catalog(ctx)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load the shop.")
	}

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("🪙 Your gold: **%s**\n\n", utils.FormatNumber(user.Gold)))
	for _, item := range items {
		desc.WriteString(fmt.Sprintf("%s **%s** `%s`\n", item.Emoji, item.Name, item.ID))
		desc.WriteString(fmt.Sprintf("└ %s · 🪙 %s\n", item.Description, utils.FormatNumber(item.Price)))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "🏪 Hunter Shop",
			Description: desc.String(),
			Color:       config.EmbedDefaultColor,
		}},
	})
}

func shopBuy(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data := e.SlashCommandInteractionData()
	itemID := data.String("item_id")
	amount := data.Int("amount")

	user, _, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
	}

	item, err := b.ShopService.Buy(ctx, user, itemID, amount)
	if err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	if amount < 1 {
		amount = 1
	}
	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("%s Bought **%dx %s**. 🪙 %s gold left.",
		item.Emoji, amount, item.Name, utils.FormatNumber(user.Gold)))
}

func shopInventory(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	owned, err := b.ShopService.Inventory(ctx, e.User().ID.String())
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your inventory.")
	}
	if len(owned) == 0 {
		return utils.EH.CreateInfoEmbed(e, "Your inventory is empty. Browse `/shop list`.")
	}

	var desc strings.Builder
	for _, ui := range owned {
		item, err := b.ShopService.GetItem(ctx, ui.ItemID)
		if err != nil {
			continue
		}
		desc.WriteString(fmt.Sprintf("%s **%dx %s** `%s`\n", item.Emoji, ui.Amount, item.Name, item.ID))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "🎒 Inventory",
			Description: desc.String(),
			Color:       config.EmbedDefaultColor,
		}},
	})
}

func shopUse(b *evolvex.Bot, e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	itemID := e.SlashCommandInteractionData().String("item_id")

	user, stats, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
	}

	item, err := b.ShopService.UseItem(ctx, user, stats, itemID)
	if err != nil {
		return utils.EH.AutoClassifyError(e, err.Error())
	}

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("%s Used **%s**\n\n", item.Emoji, item.Name))
	for name, value := range item.Effect {
		desc.WriteString(fmt.Sprintf("%s +%d\n", utils.FormatStatName(name), value))
	}
	desc.WriteString(fmt.Sprintf("\n⚡ Stamina %d/%d · ❤️ Health %d/%d",
		stats.Stamina, stats.MaxStamina, stats.Health, stats.MaxHealth))

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "Item Used",
			Description: desc.String(),
			Color:       config.SuccessColor,
		}},
	})
}
