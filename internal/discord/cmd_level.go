package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// LevelCommand returns the level command definition and handler
func LevelCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "level",
		Description: "View your chat level and XP progress",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Check another member's level",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		target := getInteractionUser(i)
		for _, opt := range getOptions(i) {
			if opt.Name == "user" {
				target = opt.UserValue(s)
			}
		}
		if target == nil {
			respondError(s, i, MsgGenericError)
			return
		}

		profile, err := client.Profile(target.ID)
		if err != nil {
			slog.Error("Failed to get profile", "user_id", target.ID, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		bar := buildProgressBar(profile.IntoLevel, profile.Needed, 20)

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("📊 %s — Level %d", profile.Name, profile.Level),
			Color: ColorBlue,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: target.AvatarURL(""),
			},
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Total XP", Value: fmt.Sprintf("%d", profile.XP), Inline: true},
				{Name: "Messages", Value: fmt.Sprintf("%d", profile.MessageCount), Inline: true},
				{
					Name:  "Next Level",
					Value: fmt.Sprintf("%s %d / %d XP", bar, profile.IntoLevel, profile.Needed),
				},
			},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// XPTableCommand returns the xptable command definition and handler
func XPTableCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "xptable",
		Description: "Show the XP required for each level",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "max",
				Description: "Highest level to show (default: 10)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		maxLevel := 10
		for _, opt := range getOptions(i) {
			if opt.Name == "max" {
				maxLevel = int(opt.IntValue())
			}
		}

		rows, err := client.XPTable(maxLevel)
		if err != nil {
			slog.Error("Failed to get XP table", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		sb.WriteString("```\nLevel  Needed   Total\n")
		for _, row := range rows {
			sb.WriteString(fmt.Sprintf("%5d  %6d  %6d\n", row.Level, row.XPNeeded, row.TotalXP))
		}
		sb.WriteString("```")

		embed := &discordgo.MessageEmbed{
			Title:       "📈 XP Table",
			Description: sb.String(),
			Color:       ColorBlue,
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// LeaderboardCommand returns the chat leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the top chatters by XP",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: "Number of entries to show (default: 10)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		limit := 10
		for _, opt := range getOptions(i) {
			if opt.Name == "limit" {
				limit = int(opt.IntValue())
			}
		}

		entries, err := client.ChatLeaderboard(limit)
		if err != nil {
			slog.Error("Failed to get leaderboard", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(entries) == 0 {
			respondError(s, i, "Nobody has earned XP yet. Start chatting!")
			return
		}

		var sb strings.Builder
		for _, e := range entries {
			sb.WriteString(fmt.Sprintf("%s **%s** — Level %d (%d XP)\n",
				rankMedal(e.Rank), e.Name, e.Level, e.XP))
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🏆 Chat Leaderboard",
			Description: sb.String(),
			Color:       ColorGold,
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// rankMedal returns the medal emoji for podium ranks, "#n" otherwise
func rankMedal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("`#%d`", rank)
	}
}
