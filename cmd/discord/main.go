package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/wrenbeck/WanderBot_Go/internal/discord"
)

// CommandFactory produces a command definition and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	_ = godotenv.Load()

	setupLogger()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	registerCommands(bot.Registry)

	if err := bot.Start(); err != nil {
		slog.Error("Failed to start bot", "error", err)
		os.Exit(1)
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		bot.Stop()
		os.Exit(1)
	}

	healthPort := getEnv("BOT_HEALTH_PORT", "8081")
	healthServer := discord.NewHTTPServer(healthPort, bot)
	healthServer.Start()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	slog.Info("Shutting down...")
	healthServer.Stop()
	bot.Stop()
}

func setupLogger() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, fmt.Errorf("DISCORD_TOKEN environment variable is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, fmt.Errorf("DISCORD_APP_ID environment variable is required")
	}

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, requests to the API will be unauthenticated")
	}

	return discord.Config{
		Token:  token,
		AppID:  appID,
		APIURL: getEnv("API_URL", "http://localhost:8080"),
		APIKey: apiKey,
	}, nil
}

func registerCommands(registry *discord.CommandRegistry) {
	factories := []CommandFactory{
		discord.LevelCommand,
		discord.XPTableCommand,
		discord.LeaderboardCommand,
		discord.AdventureCommand,
		discord.ActionCommand,
		discord.AdventureBoardCommand,
		discord.ShopCommand,
		discord.InventoryCommand,
		discord.BuyCommand,
		discord.UseCommand,
		discord.QuestCommand,
		discord.ClaimQuestCommand,
		discord.StatsCommand,
		discord.SettingsCommand,
	}

	for _, factory := range factories {
		registry.Register(factory())
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
