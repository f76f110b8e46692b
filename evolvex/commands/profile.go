package commands

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/evolvex/evolvex/evolvex"
	"github.com/evolvex/evolvex/evolvex/config"
	"github.com/evolvex/evolvex/evolvex/services"
	"github.com/evolvex/evolvex/evolvex/utils"
)

var Profile = discord.SlashCommandCreate{
	Name:        "profile",
	Description: "Show your hunter profile",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionBool{
			Name:        "card",
			Description: "Render the profile as an image card",
		},
	},
}

func ProfileHandler(b *evolvex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		user, stats, err := b.ProgressionService.GetOrCreate(ctx, e.User().ID.String(), e.User().Username)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load your profile. Please try again later.")
		}

		view, err := b.ProfileService.Build(ctx, user, stats)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to build your profile. Please try again later.")
		}

		titleName := latestTitleName(ctx, b, view)

		if e.SlashCommandInteractionData().Bool("card") {
			return profileCard(b, e, ctx, view, titleName)
		}

		var desc strings.Builder
		if title := titleName; title != "" {
			desc.WriteString(fmt.Sprintf("🏅 **%s**\n\n", title))
		}
		desc.WriteString(fmt.Sprintf("**Level %d** · 🪙 %s gold\n", view.User.Level, utils.FormatNumber(view.User.Gold)))
		desc.WriteString(fmt.Sprintf("%s %s\n\n",
			utils.ProgressBar(view.User.Exp, view.User.ExpRequired, 12),
			utils.FormatExpLine(view.User.Exp, view.User.ExpRequired)))

		desc.WriteString(fmt.Sprintf("%s **%d**", utils.FormatStatName("strength"), view.DisplayStrength))
		if bonus := view.DisplayStrength - view.Stats.Strength; bonus > 0 {
			desc.WriteString(fmt.Sprintf(" (+%d)", bonus))
		}
		desc.WriteString(fmt.Sprintf(" · %s **%d**", utils.FormatStatName("agility"), view.DisplayAgility))
		if bonus := view.DisplayAgility - view.Stats.Agility; bonus > 0 {
			desc.WriteString(fmt.Sprintf(" (+%d)", bonus))
		}
		desc.WriteString(fmt.Sprintf(" · %s **%d**", utils.FormatStatName("intelligence"), view.DisplayIntelligence))
		if bonus := view.DisplayIntelligence - view.Stats.Intelligence; bonus > 0 {
			desc.WriteString(fmt.Sprintf(" (+%d)", bonus))
		}
		desc.WriteString("\n")
		desc.WriteString(fmt.Sprintf("⚡ Stamina %d/%d · ❤️ Health %d/%d\n\n",
			view.Stats.Stamina, view.Stats.MaxStamina, view.Stats.Health, view.Stats.MaxHealth))

		desc.WriteString(fmt.Sprintf("📜 Quests completed: **%d**\n", view.QuestCount))
		if view.User.StreakCount > 0 {
			desc.WriteString(fmt.Sprintf("🔥 Streak: **%d** day%s\n", view.User.StreakCount, plural(view.User.StreakCount)))
		}
		unlocked := 0
		for _, entry := range view.Skills {
			if entry.Unlocked {
				unlocked++
			}
		}
		desc.WriteString(fmt.Sprintf("🌳 Skills: **%d**/%d · 🏅 Titles: **%d**\n", unlocked, len(view.Skills), len(view.Titles)))
		if view.Dungeon != nil {
			desc.WriteString(fmt.Sprintf("⚔️ In a **%s-Rank** dungeon (boss %d/%d HP)\n",
				view.Dungeon.Rank, view.Dungeon.BossCurrentHP, view.Dungeon.BossMaxHP))
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("⚔️ %s", view.User.Username),
				Description: desc.String(),
				Color:       config.EmbedDefaultColor,
				Footer: &discord.EmbedFooter{
					Text: fmt.Sprintf("Hunter since %s", view.User.CreatedAt.Format("Jan 2, 2006")),
				},
			}},
		})
	}
}

func profileCard(b *evolvex.Bot, e *handler.CommandEvent, ctx context.Context, view *services.ProfileView, titleName string) error {
	if err := e.DeferCreateMessage(false); err != nil {
		return err
	}

	percent := 0
	if view.User.ExpRequired > 0 {
		percent = int(view.User.Exp * 100 / view.User.ExpRequired)
	}

	data := services.ProfileCardData{
		Username:     view.User.Username,
		AvatarLetter: avatarLetter(view.User.Username),
		MemberSince:  view.User.CreatedAt.Format("Jan 2006"),
		Level:        view.User.Level,
		ExpPercent:   percent,
		CurrentExp:   view.User.Exp,
		RequiredExp:  view.User.ExpRequired,
		Strength:     view.DisplayStrength,
		Agility:      view.DisplayAgility,
		Intelligence: view.DisplayIntelligence,
		Title:        titleName,
		StreakCount:  view.User.StreakCount,
		QuestCount:   view.QuestCount,
	}

	image, err := b.ProfileImageService.GenerateProfileCard(ctx, data)
	if err != nil {
		_, uerr := e.UpdateInteractionResponse(discord.MessageUpdate{
			Embeds: &[]discord.Embed{{
				Description: "❌ Failed to render the profile card. Try `/profile` without the card option.",
				Color:       config.ErrorColor,
			}},
		})
		return uerr
	}

	// Upload so the stored URL stays fresh for other surfaces.
	if url, err := b.SpacesService.UploadProfileImage(ctx, view.User.DiscordID, image); err == nil {
		view.User.ProfileImage = url
		_ = b.UserRepository.Update(ctx, view.User)
	}

	_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
		Files: []*discord.File{
			discord.NewFile("profile.png", "", bytes.NewReader(image)),
		},
	})
	return err
}

// latestTitleName resolves the most recently earned title for display.
func latestTitleName(ctx context.Context, b *evolvex.Bot, view *services.ProfileView) string {
	if len(view.Titles) == 0 {
		return ""
	}
	latest := view.Titles[len(view.Titles)-1]
	title, err := b.TitleRepository.GetByID(ctx, latest.TitleID)
	if err != nil {
		return ""
	}
	return title.Name
}

func avatarLetter(username string) string {
	if username == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(username)[0]))
}
