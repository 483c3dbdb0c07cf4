package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createKickCommand creates the /mod kick subcommand
func createKickCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"kick",
		"Kick a user from the server",
		"mod",
		func(ctx *discord.CommandContext) error { return kickHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to kick",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the kick",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers).
		WithBotPermissions(discordgo.PermissionKickMembers)
}

func kickHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}
	if user.ID == ctx.User().ID {
		return ctx.ReplyEphemeral("❌ You cannot kick yourself.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = cases.DefaultReason
	}

	notifyUser(ctx, user, "👢 You have been kicked",
		fmt.Sprintf("**Reason:** %s", reason), 0xE67E22)

	err := ctx.Session.GuildMemberDeleteWithReason(ctx.Interaction.GuildID, user.ID, reason)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to kick: %v", err))
	}

	rec, err := recordCase(ctx, ledger, user, cases.TypeKick, reason)
	if err != nil {
		return ctx.Reply(fmt.Sprintf("👢 **%s** has been kicked, but the case could not be saved.", user.Username))
	}

	return ctx.ReplyEmbed(actionEmbed("👢", "kicked", user, rec))
}
