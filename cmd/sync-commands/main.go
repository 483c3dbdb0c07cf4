// Package main provides a utility to sync Discord slash commands.
// This removes stale commands from Discord and ensures only currently-defined commands are registered.
//
// Usage:
//   go run cmd/sync-commands/main.go [options]
//
// Options:
//   -list           List all registered commands (global and guild)
//   -clean          Remove all commands without registering new ones
//   -guild <id>     Target a specific guild instead of global commands
//   -sync           Sync commands (remove stale, register current) - default behavior
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/internal/commands"
	"github.com/wardenlabs/warden/internal/guard"
	"github.com/wardenlabs/warden/internal/snipe"
	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/logger"
)

func main() {
	listCmd := flag.Bool("list", false, "List all registered commands")
	cleanCmd := flag.Bool("clean", false, "Remove all commands without registering new ones")
	guildID := flag.String("guild", "", "Target a specific guild (leave empty for global)")
	syncCmd := flag.Bool("sync", false, "Sync commands (remove stale, register current)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting command sync utility...", "SyncCommands")

	client, err := discord.NewClient(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "SyncCommands")
		os.Exit(1)
	}

	if err := client.Session.Open(); err != nil {
		logger.Critical(fmt.Sprintf("Error connecting to Discord: %v", err), "SyncCommands")
		os.Exit(1)
	}
	defer client.Session.Close()

	logger.Success("Connected to Discord", "SyncCommands")

	// Build the full command set so sync knows what should exist.
	commands.RegisterAll(client, cases.New(cfg.WarningsFile()), snipe.NewCache(), guard.NewLog())

	switch {
	case *listCmd:
		listCommands(client, *guildID)
	case *cleanCmd:
		cleanCommands(client, *guildID)
	case *syncCmd:
		syncCommands(client, *guildID)
	default:
		syncCommands(client, *guildID)
	}

	logger.Success("Operation completed successfully", "SyncCommands")
}

// listCommands lists all commands registered with Discord
func listCommands(client *discord.ExtendedClient, guildID string) {
	logger.Info("📋 Listing registered commands...", "SyncCommands")

	var cmds []*discordgo.ApplicationCommand
	var err error

	if guildID != "" {
		logger.Info(fmt.Sprintf("Fetching commands for guild: %s", guildID), "SyncCommands")
		cmds, err = client.CommandHandler.ListGuildCommands(guildID)
	} else {
		logger.Info("Fetching global commands", "SyncCommands")
		cmds, err = client.CommandHandler.ListGlobalCommands()
	}

	if err != nil {
		logger.Error(fmt.Sprintf("Error fetching commands: %v", err), "SyncCommands")
		return
	}

	if len(cmds) == 0 {
		logger.Info("No commands registered", "SyncCommands")
		return
	}

	logger.Info(fmt.Sprintf("Commands found: %d", len(cmds)), "SyncCommands")
	for i, cmd := range cmds {
		logger.Info(fmt.Sprintf("  %d. /%s - %s (ID: %s)", i+1, cmd.Name, cmd.Description, cmd.ID), "SyncCommands")
	}
}

// cleanCommands removes all commands from Discord
func cleanCommands(client *discord.ExtendedClient, guildID string) {
	logger.Info("🧹 Removing all commands...", "SyncCommands")

	var err error
	if guildID != "" {
		logger.Info(fmt.Sprintf("Removing commands for guild: %s", guildID), "SyncCommands")
		err = client.CommandHandler.UnregisterGuildCommands(guildID)
	} else {
		logger.Info("Removing global commands", "SyncCommands")
		err = client.CommandHandler.UnregisterCommands()
	}

	if err != nil {
		logger.Error(fmt.Sprintf("Error removing commands: %v", err), "SyncCommands")
		return
	}

	logger.Success("✅ All commands removed", "SyncCommands")
}

// syncCommands removes stale commands and registers current ones
func syncCommands(client *discord.ExtendedClient, guildID string) {
	logger.Info("🔄 Syncing commands...", "SyncCommands")

	if guildID != "" {
		logger.Info(fmt.Sprintf("Removing commands for guild: %s", guildID), "SyncCommands")
		if err := client.CommandHandler.UnregisterGuildCommands(guildID); err != nil {
			logger.Error(fmt.Sprintf("Error removing guild commands: %v", err), "SyncCommands")
			return
		}
		logger.Success("✅ Guild commands removed. Run the bot to re-register dev commands.", "SyncCommands")
		return
	}

	if err := client.CommandHandler.SyncCommands(); err != nil {
		logger.Error(fmt.Sprintf("Error syncing commands: %v", err), "SyncCommands")
		return
	}
	logger.Success("✅ Commands synced", "SyncCommands")
}
