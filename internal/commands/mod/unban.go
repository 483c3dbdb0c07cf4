package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/logger"
)

// createUnbanCommand creates the /mod unban subcommand. The target is an
// id, not a user option: banned users are no longer members.
func createUnbanCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"unban",
		"Unban a user by id",
		"mod",
		func(ctx *discord.CommandContext) error { return unbanHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "userid",
			Description: "ID of the user to unban",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the unban",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

func unbanHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	userID := ctx.GetStringOption("userid")
	if userID == "" {
		return ctx.ReplyEphemeral("❌ You must specify a user id.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = cases.DefaultReason
	}

	if err := ctx.Session.GuildBanDelete(ctx.Interaction.GuildID, userID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to unban `%s`: %v", userID, err))
	}

	target, err := ctx.Session.User(userID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not resolve unbanned user %s: %v", userID, err), "Mod")
		target = &discordgo.User{ID: userID, Username: userID}
	}

	rec, err := recordCase(ctx, ledger, target, cases.TypeUnban, reason)
	if err != nil {
		return ctx.Reply(fmt.Sprintf("🔓 **%s** has been unbanned, but the case could not be saved.", target.Username))
	}

	return ctx.ReplyEmbed(actionEmbed("🔓", "unbanned", target, rec))
}
