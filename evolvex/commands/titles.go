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

var Titles = discord.SlashCommandCreate{
	Name:        "titles",
	Description: "Browse titles and see which ones you hold",
}

func TitlesHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, stats, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
		}

		// Re-check requirements so freshly qualified titles show as held.
		awarded, _ := b.TitleEvaluator.Evaluate(ctx, user, stats)

		catalog, err := b.TitleRepository.GetAll(ctx)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load titles.")
		}
		held, err := b.TitleRepository.GetUserTitles(ctx, user.DiscordID)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load your titles.")
		}

		heldSet := make(map[string]bool, len(held))
		for _, ut := range held {
			heldSet[ut.TitleID] = true
		}

		totalPages := int(math.Ceil(float64(len(catalog)) / float64(config.TitlesPerPage)))
		if totalPages == 0 {
			return utils.EH.CreateInfoEmbed(e, "No titles exist yet.")
		}

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.TitlesPerPage
				end := min(start+config.TitlesPerPage, len(catalog))

				var description strings.Builder
				if len(awarded) > 0 {
					for _, t := range awarded {
						description.WriteString(fmt.Sprintf("🎊 Just earned: **%s**\n", t.Name))
					}
					description.WriteString("\n")
				}
				for _, title := range catalog[start:end] {
					icon := "🔒"
					if heldSet[title.ID] {
						icon = "🏅"
					}
					description.WriteString(fmt.Sprintf("%s **%s**\n└ %s%s\n",
						icon, title.Name, title.Description, titleBonusSuffix(title)))
				}

				embed.
					SetTitle("🏅 Titles").
					SetDescription(description.String()).
					SetColor(config.TitleColor).
					SetFooterText(fmt.Sprintf("Page %d/%d · %d/%d held", page+1, totalPages, len(held), len(catalog)))
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		})
	}
}

func titleBonusSuffix(title *models.Title) string {
	if len(title.StatBonus) == 0 {
		return ""
	}
	parts := make([]string, 0, len(title.StatBonus))
	for _, name := range []string{models.StatStrength, models.StatAgility, models.StatIntelligence, models.StatMaxStamina, models.StatMaxHealth} {
		if value, ok := title.StatBonus[name]; ok {
			parts = append(parts, fmt.Sprintf("%s +%d", utils.FormatStatName(name), value))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " · " + strings.Join(parts, ", ")
}
