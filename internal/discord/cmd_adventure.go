package discord

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wrenbeck/WanderBot_Go/internal/adventure"
)

var titleCaser = cases.Title(language.English)

// AdventureCommand returns the adventure status command definition and handler
func AdventureCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "adventure",
		Description: "View your adventure status and available actions",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		state, err := client.AdventureState(user.ID)
		if err != nil {
			slog.Error("Failed to get adventure state", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		healthBar := buildProgressBar(state.Health, state.MaxHealth, 10)

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🗺️ %s", titleCaser.String(state.Location)),
			Description: state.Description,
			Color:       ColorPurple,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "Health",
					Value:  fmt.Sprintf("%s %d / %d", healthBar, state.Health, state.MaxHealth),
					Inline: true,
				},
				{Name: "Gold", Value: fmt.Sprintf("💰 %d", state.Gold), Inline: true},
				{
					Name:   "Adventure Level",
					Value:  fmt.Sprintf("%d (%d XP)", state.AdventureLevel, state.AdventureXP),
					Inline: true,
				},
				{
					Name:  "Actions",
					Value: formatActionList(state.Actions),
				},
				{
					Name:  "Paths",
					Value: formatLocationList(state.Connections),
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: "Use /action to explore",
			},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// ActionCommand returns the action command definition and handler
func ActionCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "action",
		Description: "Perform an adventure action or travel to a connected location",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Action or destination (see /adventure)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		action := getOptions(i)[0].StringValue()

		result, err := client.Action(user.ID, action)
		if err != nil {
			slog.Error("Failed to perform action",
				"user_id", user.ID, "action", action, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := buildActionEmbed(action, result)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// buildActionEmbed renders a turn result: either a travel notice or the
// encounter outcome with its deltas.
func buildActionEmbed(action string, result *adventure.ActionResult) *discordgo.MessageEmbed {
	if result.Moved {
		return &discordgo.MessageEmbed{
			Title:       "🚶 Traveling...",
			Description: fmt.Sprintf("You arrive at **%s**.", titleCaser.String(result.Location)),
			Color:       ColorBlue,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "Use /adventure to look around",
			},
		}
	}

	outcome := result.Outcome
	if outcome == nil {
		return &discordgo.MessageEmbed{
			Title:       "⚔️ " + titleCaser.String(action),
			Description: "Nothing happened.",
			Color:       ColorBlue,
		}
	}

	color := ColorGreen
	title := "⚔️ " + titleCaser.String(action)
	switch outcome.Band {
	case adventure.BandRare:
		color = ColorPurple
		title = "✨ Rare Event!"
	case adventure.BandLegendary:
		color = ColorGold
		title = "🌟 Legendary Event!"
	case adventure.BandBoss:
		color = ColorRed
		title = "🐉 Boss Encounter!"
	}

	var sb strings.Builder
	sb.WriteString(outcome.Text)
	sb.WriteString("\n")
	if outcome.GoldDelta != 0 {
		sb.WriteString(fmt.Sprintf("\n💰 Gold %+d", outcome.GoldDelta))
	}
	if outcome.HealthDelta != 0 {
		sb.WriteString(fmt.Sprintf("\n❤️ Health %+d", outcome.HealthDelta))
	}
	if outcome.XPGained > 0 {
		sb.WriteString(fmt.Sprintf("\n📈 +%d adventure XP", outcome.XPGained))
	}
	if outcome.MonstersDelta > 0 {
		sb.WriteString(fmt.Sprintf("\n👹 Monsters defeated +%d", outcome.MonstersDelta))
	}
	if outcome.LeveledUp {
		sb.WriteString(fmt.Sprintf("\n\n🎉 **Adventure level up! You are now level %d.**", outcome.NewLevel))
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Health", Value: fmt.Sprintf("%d", result.Health), Inline: true},
			{Name: "Gold", Value: fmt.Sprintf("%d", result.Gold), Inline: true},
			{Name: "Location", Value: titleCaser.String(result.Location), Inline: true},
		},
	}
}

// AdventureBoardCommand returns the adventure leaderboard command definition and handler
func AdventureBoardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "adventureboard",
		Description: "Show the top adventurers",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "category",
				Description: "Ranking category (default: gold)",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Gold", Value: "gold"},
					{Name: "Adventure Level", Value: "level"},
					{Name: "Monsters Defeated", Value: "monsters"},
				},
			},
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

		category := "gold"
		limit := 10
		for _, opt := range getOptions(i) {
			switch opt.Name {
			case "category":
				category = opt.StringValue()
			case "limit":
				limit = int(opt.IntValue())
			}
		}

		entries, err := client.AdventureLeaderboard(category, limit)
		if err != nil {
			slog.Error("Failed to get adventure leaderboard", "category", category, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(entries) == 0 {
			respondError(s, i, "Nobody has gone adventuring yet. Try /adventure!")
			return
		}

		var sb strings.Builder
		for _, e := range entries {
			var value string
			switch category {
			case "level":
				value = fmt.Sprintf("Level %d", e.AdventureLevel)
			case "monsters":
				value = fmt.Sprintf("%d monsters", e.MonstersDefeated)
			default:
				value = fmt.Sprintf("%d gold", e.Gold)
			}
			sb.WriteString(fmt.Sprintf("%s **%s** — %s\n", rankMedal(e.Rank), e.Name, value))
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🗡️ Adventure Leaderboard — %s", titleCaser.String(category)),
			Description: sb.String(),
			Color:       ColorGold,
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

func formatActionList(actions []string) string {
	if len(actions) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, "`"+a+"`")
	}
	return strings.Join(parts, " ")
}

func formatLocationList(locations []string) string {
	if len(locations) == 0 {
		return "None"
	}
	sorted := make([]string, len(locations))
	copy(sorted, locations)
	sort.Strings(sorted)
	parts := make([]string, 0, len(sorted))
	for _, l := range sorted {
		parts = append(parts, "`"+l+"`")
	}
	return strings.Join(parts, " ")
}
