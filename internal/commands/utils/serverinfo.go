package utils

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/errors"
)

// createServerInfoCommand creates the /utils serverinfo subcommand
func createServerInfoCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"serverinfo",
		"Show information about this server",
		"utils",
		func(ctx *discord.CommandContext) error { return serverInfoHandler(ctx, ledger) },
	)
}

func serverInfoHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guild := ctx.Guild()
		if guild == nil {
			ctx.ReplyEphemeral("❌ This command can only be used in a server.")
			return
		}

		created, _ := discordgo.SnowflakeTimestamp(guild.ID)
		stats := ledger.GetStats(guild.ID)

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("🏠 %s", guild.Name),
			Color: 0x5865F2,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: guild.IconURL("256"),
			},
			Fields: []*discordgo.MessageEmbedField{
				{Name: "ID", Value: guild.ID, Inline: true},
				{Name: "Owner", Value: fmt.Sprintf("<@%s>", guild.OwnerID), Inline: true},
				{Name: "Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
				{Name: "Channels", Value: fmt.Sprintf("%d", len(guild.Channels)), Inline: true},
				{Name: "Roles", Value: fmt.Sprintf("%d", len(guild.Roles)), Inline: true},
				{Name: "Created", Value: fmt.Sprintf("<t:%d:D>", created.Unix()), Inline: true},
				{Name: "Moderation cases", Value: fmt.Sprintf("%d (%d users)", stats.TotalWarnings, stats.UsersWarned), Inline: true},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: config.Get().EmbedFooter,
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}
