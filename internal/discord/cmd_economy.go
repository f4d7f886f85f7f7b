package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
)

// ShopCommand returns the shop command definition and handler
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse the item shop",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		entries, err := client.Shop()
		if err != nil {
			slog.Error("Failed to get shop", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		for _, e := range entries {
			sb.WriteString(fmt.Sprintf("**%s** — 💰 %d\n%s\n\n",
				e.Item.Name, e.Item.Price, describeEffect(e.Item.Effect, e.Item.Value)))
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🏪 Item Shop",
			Description: sb.String(),
			Color:       ColorGold,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "Buy with /buy — the shop is only open in town",
			},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "View your gold and held items",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		view, err := client.Inventory(user.ID)
		if err != nil {
			slog.Error("Failed to get inventory", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := "Your pack is empty."
		if len(view.Items) > 0 {
			var sb strings.Builder
			for _, held := range view.Items {
				sb.WriteString(fmt.Sprintf("**%s** ×%d\n", held.Item.Name, held.Count))
			}
			description = sb.String()
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🎒 Inventory",
			Description: description,
			Color:       ColorBlue,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Gold", Value: fmt.Sprintf("💰 %d", view.Gold)},
			},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// BuyCommand returns the buy command definition and handler
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Purchase an item from the shop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Item name to buy",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		itemName := getOptions(i)[0].StringValue()

		result, err := client.Buy(user.ID, itemName)
		if err != nil {
			slog.Error("Failed to buy item", "user_id", user.ID, "item", itemName, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: "💰 Purchase Complete",
			Description: fmt.Sprintf("You bought **%s** for %d gold.",
				result.Item.Name, result.Item.Price),
			Color: ColorGreen,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Gold Left", Value: fmt.Sprintf("%d", result.Gold), Inline: true},
				{Name: "Now Holding", Value: fmt.Sprintf("×%d", result.Held), Inline: true},
			},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// UseCommand returns the use command definition and handler
func UseCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "use",
		Description: "Consume an item from your inventory",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Item name to use",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		itemName := getOptions(i)[0].StringValue()

		result, err := client.Use(user.ID, itemName)
		if err != nil {
			slog.Error("Failed to use item", "user_id", user.ID, "item", itemName, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		sb.WriteString(result.Text)
		if result.Health > 0 {
			sb.WriteString(fmt.Sprintf("\n❤️ Health is now %d", result.Health))
		}
		if result.AdventureXP > 0 {
			sb.WriteString(fmt.Sprintf("\n📈 Adventure XP is now %d", result.AdventureXP))
		}
		sb.WriteString(fmt.Sprintf("\n\n**%s** remaining: ×%d", result.Item.Name, result.Remaining))

		embed := &discordgo.MessageEmbed{
			Title:       "✨ " + result.Item.Name,
			Description: sb.String(),
			Color:       ColorGreen,
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// describeEffect renders an item effect for the shop listing
func describeEffect(effect string, value int) string {
	switch effect {
	case domain.EffectHeal:
		return fmt.Sprintf("Restores %d health.", value)
	case domain.EffectMagic:
		return fmt.Sprintf("Grants %d adventure XP.", value)
	case domain.EffectWeapon:
		return fmt.Sprintf("Carried weapon, +%d to encounter rewards.", value)
	case domain.EffectDefense:
		return fmt.Sprintf("Carried armor, softens damage by %d.", value)
	default:
		return "A curiosity with no obvious use."
	}
}
