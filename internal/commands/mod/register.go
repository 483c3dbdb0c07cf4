package mod

import (
	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient, ledger *cases.Ledger) {
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Moderation commands",
		createBanCommand(ledger),
		createKickCommand(ledger),
		createMuteCommand(ledger),
		createUnmuteCommand(ledger),
		createSoftbanCommand(ledger),
		createUnbanCommand(ledger),
		createWarnCommand(ledger),
		createLockCommand(),
		createUnlockCommand(),
		createSlowmodeCommand(),
	)

	// Hide /mod from regular members; each subcommand still checks its own
	// permission at dispatch.
	perms := int64(discordgo.PermissionModerateMembers)
	modGroup.DefaultMemberPermissions = &perms

	client.CommandHandler.AddGlobalCommand(modGroup)
}
