package warnings

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createClearCommand creates the /warnings clear subcommand
func createClearCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"clear",
		"Remove all of a user's cases in this server",
		"warnings",
		func(ctx *discord.CommandContext) error { return clearHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User whose cases should be cleared",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func clearHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	removed, err := ledger.Clear(ctx.Interaction.GuildID, user.ID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Failed to clear the user's cases. Please try again.")
	}

	if removed == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("ℹ️ **%s** has no cases in this server.", user.Username))
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "🧹 Cases cleared",
		Description: fmt.Sprintf("Removed **%d** case(s) for **%s**.", removed, user.Username),
		Color:       0x57F287,
	})
}
