package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createSoftbanCommand creates the /mod softban subcommand. A softban is
// a ban followed by an immediate unban, used to purge a user's recent
// messages without keeping them out.
func createSoftbanCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"softban",
		"Ban and immediately unban a user to purge their messages",
		"mod",
		func(ctx *discord.CommandContext) error { return softbanHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to softban",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the softban",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "days",
			Description: "Days of messages to delete (1-7)",
			Required:    false,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    7,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

func softbanHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}
	if user.ID == ctx.User().ID {
		return ctx.ReplyEphemeral("❌ You cannot softban yourself.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = cases.DefaultReason
	}
	days := int(ctx.GetIntOption("days"))
	if days == 0 {
		days = 1
	}

	notifyUser(ctx, user, "🧹 You have been softbanned",
		fmt.Sprintf("**Reason:** %s\nYou may rejoin the server.", reason), 0xE67E22)

	if err := ctx.Session.GuildBanCreateWithReason(ctx.Interaction.GuildID, user.ID, reason, days); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to softban: %v", err))
	}
	if err := ctx.Session.GuildBanDelete(ctx.Interaction.GuildID, user.ID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("⚠️ Banned **%s** but failed to lift the ban: %v", user.Username, err))
	}

	rec, err := recordCase(ctx, ledger, user, cases.TypeSoftban, reason)
	if err != nil {
		return ctx.Reply(fmt.Sprintf("🧹 **%s** has been softbanned, but the case could not be saved.", user.Username))
	}

	return ctx.ReplyEmbed(actionEmbed("🧹", "softbanned", user, rec))
}
