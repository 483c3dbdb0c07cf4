package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/errors"
)

// createModLogsCommand creates the /utils modlogs subcommand
func createModLogsCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"modlogs",
		"Show recent moderation cases and statistics",
		"utils",
		func(ctx *discord.CommandContext) error { return modLogsHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Only show cases for this user",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func modLogsHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID := ctx.Interaction.GuildID

		if user := ctx.GetUserOption("user"); user != nil {
			records := ledger.Get(guildID, user.ID)
			if len(records) == 0 {
				ctx.ReplyEphemeral(fmt.Sprintf("ℹ️ **%s** has no cases in this server.", user.Username))
				return
			}

			var description string
			for _, rec := range records {
				description += formatCaseLine(rec.CaseID, rec.Type, rec.Reason, rec.ModeratorTag, rec.Timestamp)
			}

			ctx.ReplyEmbed(&discordgo.MessageEmbed{
				Title:       fmt.Sprintf("📋 Cases for %s (%d)", user.Username, len(records)),
				Description: description,
				Color:       0x5865F2,
				Footer:      &discordgo.MessageEmbedFooter{Text: config.Get().EmbedFooter},
			})
			return
		}

		stats := ledger.GetStats(guildID)
		recent := ledger.GetRecent(guildID, 10)

		if stats.TotalWarnings == 0 {
			ctx.ReplyEphemeral("ℹ️ No moderation cases have been recorded in this server.")
			return
		}

		var description string
		for _, rec := range recent {
			description += formatCaseLine(rec.CaseID, rec.Type, rec.Reason, rec.ModeratorTag, rec.Timestamp)
		}

		// Stable type breakdown for the summary field.
		types := make([]string, 0, len(stats.ByType))
		for t := range stats.ByType {
			types = append(types, t)
		}
		sort.Strings(types)

		breakdown := make([]string, 0, len(types))
		for _, t := range types {
			breakdown = append(breakdown, fmt.Sprintf("**%s:** %d", t, stats.ByType[t]))
		}

		ctx.ReplyEmbed(&discordgo.MessageEmbed{
			Title:       "📋 Recent moderation cases",
			Description: description,
			Color:       0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Total cases", Value: fmt.Sprintf("%d", stats.TotalWarnings), Inline: true},
				{Name: "Users with cases", Value: fmt.Sprintf("%d", stats.UsersWarned), Inline: true},
				{Name: "By type", Value: strings.Join(breakdown, " • ")},
			},
			Footer: &discordgo.MessageEmbedFooter{Text: config.Get().EmbedFooter},
		})
	}()
	return nil
}

func formatCaseLine(caseID int, caseType, reason, modTag, timestamp string) string {
	when := timestamp
	if t, err := time.Parse(time.RFC3339, timestamp); err == nil {
		when = fmt.Sprintf("<t:%d:R>", t.Unix())
	}
	return fmt.Sprintf("> **#%d** [%s] %s (by %s, %s)\n", caseID, caseType, reason, modTag, when)
}
