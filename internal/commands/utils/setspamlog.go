package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/database"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createSetSpamLogCommand creates the /utils setspamlog subcommand
func createSetSpamLogCommand() *discord.Command {
	return discord.NewCommand(
		"setspamlog",
		"Set or disable the message/spam log channel",
		"utils",
		setSpamLogHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel for message and spam logs (omit to disable)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

func setSpamLogHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")

	if channel == nil {
		if err := database.SetSpamLogChannel(ctx.Interaction.GuildID, ""); err != nil {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to update settings: %v", err))
		}
		return ctx.Reply("🧾 Message and spam logging has been disabled.")
	}

	if err := database.SetSpamLogChannel(ctx.Interaction.GuildID, channel.ID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to update settings: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("🧾 Message edits, deletions, and spam detections will now be logged to <#%s>.", channel.ID))
}
