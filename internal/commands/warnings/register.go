// Package warnings implements the /warnings command group for inspecting
// and editing the moderation case ledger.
package warnings

import (
	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// RegisterWarningsCommands registers the /warnings subcommands
func RegisterWarningsCommands(client *discord.ExtendedClient, ledger *cases.Ledger) {
	group := client.CommandHandler.BuildCommandGroup(
		"warnings",
		"View and manage moderation cases",
		createViewCommand(ledger),
		createRemoveCommand(ledger),
		createClearCommand(ledger),
	)

	client.CommandHandler.AddGlobalCommand(group)
}
