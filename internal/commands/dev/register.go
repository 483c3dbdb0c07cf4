package dev

import (
	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// Register registers all dev commands as /dev subcommands (dev guild only)
func Register(client *discord.ExtendedClient, ledger *cases.Ledger) {
	devGroup := client.CommandHandler.BuildCommandGroup(
		"dev",
		"Developer commands",
		createEvalCommand(ledger),
	)

	client.CommandHandler.AddDevCommand(devGroup)
}
