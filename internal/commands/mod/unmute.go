package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createUnmuteCommand creates the /mod unmute subcommand
func createUnmuteCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Remove a user's timeout",
		"mod",
		func(ctx *discord.CommandContext) error { return unmuteHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to unmute",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the unmute",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers)
}

func unmuteHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = cases.DefaultReason
	}

	if err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, nil); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to unmute: %v", err))
	}

	go notifyUser(ctx, user, "🔊 Your mute has been lifted",
		fmt.Sprintf("**Reason:** %s", reason), 0x57F287)

	rec, err := recordCase(ctx, ledger, user, cases.TypeUnmute, reason)
	if err != nil {
		return ctx.Reply(fmt.Sprintf("🔊 **%s** has been unmuted, but the case could not be saved.", user.Username))
	}

	return ctx.ReplyEmbed(actionEmbed("🔊", "unmuted", user, rec))
}
