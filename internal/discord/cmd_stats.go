package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// StatsCommand returns the server stats command definition and handler
func StatsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "stats",
		Description: "Show server-wide chat and adventure totals",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		overview, err := client.Stats()
		if err != nil {
			slog.Error("Failed to get stats", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: "📊 Server Stats",
			Color: ColorPurple,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name: "💬 Chat",
					Value: fmt.Sprintf("Chatters: %d\nMessages: %d\nTotal XP: %d\nHighest level: %d",
						overview.Chat.Users, overview.Chat.Messages,
						overview.Chat.TotalXP, overview.MaxChatLevel),
					Inline: true,
				},
				{
					Name: "🗡️ Adventure",
					Value: fmt.Sprintf("Adventurers: %d\nGold in circulation: %d\nMonsters defeated: %d\nHighest level: %d",
						overview.Adventure.Adventurers, overview.Adventure.Gold,
						overview.Adventure.MonstersDefeated, overview.MaxAdventureLevel),
					Inline: true,
				},
				{
					Name:  "📜 Quests",
					Value: fmt.Sprintf("Claimed today: %d", overview.QuestClaimsToday),
				},
			},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
