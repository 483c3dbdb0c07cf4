package warnings

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createViewCommand creates the /warnings view subcommand
func createViewCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"view",
		"List a user's moderation cases",
		"warnings",
		func(ctx *discord.CommandContext) error { return viewHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to look up (defaults to yourself)",
			Required:    false,
		},
	)
}

func viewHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	target := ctx.GetUserOption("user")
	isSelf := target == nil
	if isSelf {
		target = ctx.User()
	}

	// Anyone may check their own record. Someone else's takes moderator
	// permissions.
	isModerator := ctx.HasPermission(discordgo.PermissionModerateMembers)
	if !isSelf && !isModerator {
		return ctx.ReplyEphemeral("❌ You do not have permission to view another user's cases.")
	}

	records := ledger.Get(ctx.Interaction.GuildID, target.ID)

	if len(records) == 0 {
		return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🔖 Cases for %s", target.Username),
			Description: fmt.Sprintf("No cases found for this user in this server.\n\n> 🕒 **Checked:** <t:%d>", time.Now().Unix()),
			Color:       0x57F287,
			Footer: &discordgo.MessageEmbedFooter{
				Text: config.Get().EmbedFooter,
			},
		})
	}

	var description string
	shown := records
	if len(shown) > 15 {
		shown = shown[len(shown)-15:]
		description = fmt.Sprintf("Showing the 15 most recent of %d cases.\n\n", len(records))
	}

	for _, rec := range shown {
		modName := "Hidden"
		if isModerator {
			modName = rec.ModeratorTag
		}

		when := rec.Timestamp
		if t, err := time.Parse(time.RFC3339, rec.Timestamp); err == nil {
			when = fmt.Sprintf("<t:%d:f>", t.Unix())
		}

		description += fmt.Sprintf("> **Case #%d** (%s)\n> **Reason:** %s\n> **Moderator:** %s\n> **Date:** %s\n\n",
			rec.CaseID, rec.Type, rec.Reason, modName, when)
	}

	description += fmt.Sprintf("> 💫 **Total cases:** %d\n> 🕒 **Checked:** <t:%d>", len(records), time.Now().Unix())

	return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🔖 Cases for %s (%s)", target.Username, target.ID),
		Description: description,
		Color:       0xFFA500,
		Footer: &discordgo.MessageEmbedFooter{
			Text: config.Get().EmbedFooter,
		},
	})
}
