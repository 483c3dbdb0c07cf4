// Package main is the entry point for the Warden moderation bot.
// It initializes all systems and starts the Discord client.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wardenlabs/warden/internal/commands"
	"github.com/wardenlabs/warden/internal/events"
	"github.com/wardenlabs/warden/internal/guard"
	"github.com/wardenlabs/warden/internal/snipe"
	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/database"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/errors"
	"github.com/wardenlabs/warden/pkg/logger"
	"github.com/wardenlabs/warden/pkg/mqtt"
	"github.com/wardenlabs/warden/pkg/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting Warden...", "Main")
	logger.Info(fmt.Sprintf("Working directory: %s", getCurrentDir()), "Main")

	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			_ = discordClient.Stop()
		}
	})

	// Guild settings live in MongoDB; the bot keeps working without it
	// and retries in the background.
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
	}
	defer func() {
		if db != nil {
			_ = db.Disconnect()
		}
	}()

	if db != nil {
		database.InitGlobalDataManagers(db)
	}

	// The case ledger is the source of truth for moderation history.
	ledger := cases.New(cfg.WarningsFile())

	snipes := snipe.NewCache()
	guardLog := guard.NewLog()

	mqttClientID := "warden"
	if !cfg.IsProd() {
		mqttClientID = "warden_canary"
	}
	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	webServer := web.Init(cfg)
	web.SetupAPIRoutes(webServer, ledger)
	webServer.Start()
	defer webServer.Stop()

	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	commands.RegisterAll(discordClient, ledger, snipes, guardLog)
	events.RegisterAll(discordClient, snipes, guardLog)

	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		_ = discordClient.Stop()
	}()

	logger.Success("Warden started successfully!", "Main")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down Warden...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
