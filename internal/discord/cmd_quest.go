package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// QuestCommand returns the daily quest command definition and handler
func QuestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "quest",
		Description: "View today's quest and your progress",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		today, err := client.QuestToday(user.ID)
		if err != nil {
			slog.Error("Failed to get daily quest", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		bar := buildProgressBar(today.Progress, today.Quest.Target, 15)

		status := fmt.Sprintf("%s %d / %d", bar, today.Progress, today.Quest.Target)
		footer := "Complete the quest to earn your reward"
		color := ColorBlue
		switch {
		case today.Claimed:
			status = "🎁 Reward claimed — come back tomorrow!"
			footer = "A new quest arrives every day"
			color = ColorGreen
		case today.Completed:
			footer = "Use /claimquest to collect your reward"
			color = ColorGold
		}

		embed := &discordgo.MessageEmbed{
			Title:       "📜 " + today.Quest.Name,
			Description: today.Quest.Description,
			Color:       color,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Progress", Value: status},
				{Name: "Reward", Value: fmt.Sprintf("💰 %d gold", today.Quest.Reward), Inline: true},
				{Name: "Date", Value: today.Date, Inline: true},
			},
			Footer: &discordgo.MessageEmbedFooter{Text: footer},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// ClaimQuestCommand returns the quest claim command definition and handler
func ClaimQuestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "claimquest",
		Description: "Claim the reward for today's completed quest",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		result, err := client.QuestClaim(user.ID)
		if err != nil {
			slog.Warn("Failed to claim quest", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: "🎁 Quest Complete!",
			Description: fmt.Sprintf("**%s** — you earned **%d gold**!",
				result.Quest.Name, result.Reward),
			Color: ColorGold,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Gold", Value: fmt.Sprintf("💰 %d", result.Gold)},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: "A new quest arrives every day",
			},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
