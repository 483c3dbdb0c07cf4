package utils

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/internal/guard"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createSpamLogsCommand creates the /utils spamlogs subcommand
func createSpamLogsCommand(guardLog *guard.Log) *discord.Command {
	return discord.NewCommand(
		"spamlogs",
		"Show recent auto-moderation detections",
		"utils",
		func(ctx *discord.CommandContext) error { return spamLogsHandler(ctx, guardLog) },
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func spamLogsHandler(ctx *discord.CommandContext, guardLog *guard.Log) error {
	entries := guardLog.Recent(10)
	if len(entries) == 0 {
		return ctx.ReplyEphemeral("ℹ️ No detections recorded yet. Auto-moderation hits will show up here.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚠️ Recent Detections",
		Description: "The latest auto-moderation detections, newest first.",
		Color:       0xFEE75C,
		Footer: &discordgo.MessageEmbedFooter{
			Text: config.Get().EmbedFooter,
		},
	}

	for _, d := range entries {
		content := d.Content
		if runes := []rune(content); len(runes) > 50 {
			content = string(runes[:50]) + "..."
		}
		if content == "" {
			content = "N/A"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s | %s", strings.ToUpper(d.Type), d.UserTag),
			Value: fmt.Sprintf("Channel: <#%s>\nContent: %s\nWhen: <t:%d:R>", d.ChannelID, content, d.Time.Unix()),
		})
	}

	return ctx.ReplyEmbed(embed)
}
