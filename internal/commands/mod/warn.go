package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/database"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"warn",
		"Warn a user",
		"mod",
		func(ctx *discord.CommandContext) error { return warnHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to warn",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the warning",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "silent",
			Description: "Skip sending the user a DM",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func warnHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}
	if user.Bot {
		return ctx.ReplyEphemeral("❌ Bots cannot be warned.")
	}
	if user.ID == ctx.User().ID {
		return ctx.ReplyEphemeral("❌ You cannot warn yourself.")
	}

	reason := ctx.GetStringOption("reason")
	silent := ctx.GetBoolOption("silent")

	rec, err := recordCase(ctx, ledger, user, cases.TypeWarn, reason)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Failed to save the warning. Please try again.")
	}

	if !silent {
		go notifyUser(ctx, user, "⚠️ You have been warned",
			fmt.Sprintf("**Reason:** %s\n**Case:** #%d", rec.Reason, rec.CaseID), 0xFEE75C)
	}

	embed := actionEmbed("⚠️", "warned", user, rec)

	// Flag users who crossed the configured warning threshold.
	count := ledger.Count(ctx.Interaction.GuildID, user.ID)
	if max := maxWarnings(ctx.Interaction.GuildID); count >= max {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⚠️ Threshold reached",
			Value: fmt.Sprintf("**%s** now has %d warnings (limit: %d). Consider further action.", user.Username, count, max),
		})
		embed.Color = 0xED4245
	}

	return ctx.ReplyEmbed(embed)
}

// maxWarnings returns the guild's configured warning threshold, falling
// back to the global default.
func maxWarnings(guildID string) int {
	if settings, err := database.GetGuildSettings(guildID); err == nil && settings != nil && settings.MaxWarnings > 0 {
		return settings.MaxWarnings
	}
	return config.Get().MaxWarnings
}
