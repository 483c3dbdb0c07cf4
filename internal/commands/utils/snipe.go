package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/internal/snipe"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createSnipeCommand creates the /utils snipe subcommand
func createSnipeCommand(snipes *snipe.Cache) *discord.Command {
	return discord.NewCommand(
		"snipe",
		"Show the last deleted or edited message in this channel",
		"utils",
		func(ctx *discord.CommandContext) error { return snipeHandler(ctx, snipes) },
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

func snipeHandler(ctx *discord.CommandContext, snipes *snipe.Cache) error {
	msg, ok := snipes.Last(ctx.Interaction.ChannelID)
	if !ok {
		return ctx.ReplyEphemeral("ℹ️ There is nothing to snipe in this channel.")
	}

	title := "🗑️ Deleted message"
	description := msg.Content
	if msg.Edited {
		title = "✏️ Edited message"
		description = fmt.Sprintf("**Before:** %s\n**After:** %s", msg.OldContent, msg.Content)
	}
	if description == "" {
		description = "*no text content*"
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0x95A5A6,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Author", Value: fmt.Sprintf("%s (<@%s>)", msg.AuthorTag, msg.AuthorID), Inline: true},
			{Name: "When", Value: fmt.Sprintf("<t:%d:R>", msg.DeletedAt.Unix()), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: config.Get().EmbedFooter,
		},
	})
}
