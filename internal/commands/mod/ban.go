package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"ban",
		"Ban a user from the server",
		"mod",
		func(ctx *discord.CommandContext) error { return banHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to ban",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the ban",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "days",
			Description: "Days of messages to delete (0-7)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    7,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

func banHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}
	if user.ID == ctx.User().ID {
		return ctx.ReplyEphemeral("❌ You cannot ban yourself.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = cases.DefaultReason
	}
	days := int(ctx.GetIntOption("days"))

	// DM before banning, afterwards the user is unreachable.
	notifyUser(ctx, user, "🔨 You have been banned",
		fmt.Sprintf("**Reason:** %s", reason), 0xED4245)

	err := ctx.Session.GuildBanCreateWithReason(ctx.Interaction.GuildID, user.ID, reason, days)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to ban: %v", err))
	}

	rec, err := recordCase(ctx, ledger, user, cases.TypeBan, reason)
	if err != nil {
		return ctx.Reply(fmt.Sprintf("🔨 **%s** has been banned, but the case could not be saved.", user.Username))
	}

	return ctx.ReplyEmbed(actionEmbed("🔨", "banned", user, rec))
}
