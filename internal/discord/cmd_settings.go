package discord

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// SettingsCommand returns the admin settings command definition and handler.
// Restricted to administrators via default member permissions.
func SettingsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	adminOnly := int64(discordgo.PermissionAdministrator)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "settings",
		Description:              "View or change game settings",
		DefaultMemberPermissions: &adminOnly,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "Show all stored setting overrides",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "set",
				Description: "Change one setting",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "key",
						Description: "Setting key (e.g. xp_per_message)",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "value",
						Description: "New value",
						Required:    true,
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, MsgGenericError)
			return
		}

		switch options[0].Name {
		case "set":
			handleSettingsSet(s, i, client, options[0].Options)
		default:
			handleSettingsView(s, i, client)
		}
	}

	return cmd, handler
}

func handleSettingsView(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	stored, err := client.Settings()
	if err != nil {
		slog.Error("Failed to get settings", "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	description := "No overrides stored — all settings are at their defaults."
	if len(stored) > 0 {
		keys := make([]string, 0, len(stored))
		for k := range stored {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var sb strings.Builder
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("`%s` = `%s`\n", k, stored[k]))
		}
		description = sb.String()
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚙️ Game Settings",
		Description: description,
		Color:       ColorBlue,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Change a setting with /settings set",
		},
	}

	sendEmbed(s, i, embed)
}

func handleSettingsSet(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	var key, value string
	for _, opt := range opts {
		switch opt.Name {
		case "key":
			key = opt.StringValue()
		case "value":
			value = opt.StringValue()
		}
	}

	if err := client.SetSetting(key, value); err != nil {
		slog.Warn("Failed to update setting", "key", key, "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚙️ Setting Updated",
		Description: fmt.Sprintf("`%s` is now `%s`.", key, value),
		Color:       ColorGreen,
	}

	sendEmbed(s, i, embed)
}
