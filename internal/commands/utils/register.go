// Package utils provides utility commands organized as subcommands under
// /utils, plus server configuration like the mod-log channel.
package utils

import (
	"github.com/wardenlabs/warden/internal/guard"
	"github.com/wardenlabs/warden/internal/snipe"
	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// RegisterUtilsCommands registers all utility commands as /utils subcommands
func RegisterUtilsCommands(client *discord.ExtendedClient, ledger *cases.Ledger, snipes *snipe.Cache, guardLog *guard.Log) {
	group := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Utility commands",
		createPingCommand(),
		createStatsCommand(ledger),
		createHelpCommand(),
		createPurgeCommand(),
		createSetModLogCommand(),
		createSetSpamLogCommand(),
		createSpamLogsCommand(guardLog),
		createServerInfoCommand(ledger),
		createUserInfoCommand(ledger),
		createRoleInfoCommand(),
		createEmojiInfoCommand(),
		createAvatarCommand(),
		createSnipeCommand(snipes),
		createModLogsCommand(ledger),
	)

	client.CommandHandler.AddGlobalCommand(group)
}
