// Package commands wires every command category to the Discord client.
package commands

import (
	"github.com/wardenlabs/warden/internal/commands/dev"
	"github.com/wardenlabs/warden/internal/commands/mod"
	"github.com/wardenlabs/warden/internal/commands/utils"
	"github.com/wardenlabs/warden/internal/commands/warnings"
	"github.com/wardenlabs/warden/internal/guard"
	"github.com/wardenlabs/warden/internal/snipe"
	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, ledger *cases.Ledger, snipes *snipe.Cache, guardLog *guard.Log) {
	mod.RegisterModCommands(client, ledger)
	warnings.RegisterWarningsCommands(client, ledger)
	utils.RegisterUtilsCommands(client, ledger, snipes, guardLog)
	dev.Register(client, ledger)
}
