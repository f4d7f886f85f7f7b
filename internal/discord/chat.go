package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// messageCreate reports every human chat message to the API so it can earn XP,
// then announces any resulting level-up.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	displayName := m.Author.Username
	if m.Member != nil && m.Member.Nick != "" {
		displayName = m.Member.Nick
	}

	result, err := b.Client.HandleMessage(m.Author.ID, m.Author.Username, displayName)
	if err != nil {
		slog.Warn("Failed to report message for XP", "user_id", m.Author.ID, "error", err)
		return
	}

	if result.Welcome != "" {
		welcome := strings.ReplaceAll(result.Welcome, "{user}", m.Author.Mention())
		if _, err := s.ChannelMessageSend(m.ChannelID, welcome); err != nil {
			slog.Error("Failed to send welcome message",
				"channel_id", m.ChannelID, "user_id", m.Author.ID, "error", err)
		}
	}

	if !result.LeveledUp || result.Announcement == "" {
		return
	}

	announcement := strings.ReplaceAll(result.Announcement, "{user}", m.Author.Mention())

	channelID := m.ChannelID
	if result.AnnounceChannel != "" {
		channelID = result.AnnounceChannel
	}

	if _, err := s.ChannelMessageSend(channelID, announcement); err != nil {
		slog.Error("Failed to send level-up announcement",
			"channel_id", channelID, "user_id", m.Author.ID, "error", err)
	}
}
