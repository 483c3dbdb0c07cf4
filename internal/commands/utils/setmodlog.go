package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/database"
	"github.com/wardenlabs/warden/pkg/discord"
)

// createSetModLogCommand creates the /utils setmodlog subcommand
func createSetModLogCommand() *discord.Command {
	return discord.NewCommand(
		"setmodlog",
		"Set or disable the moderation log channel",
		"utils",
		setModLogHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel for case logs (omit to disable)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

func setModLogHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")

	if channel == nil {
		if err := database.SetModLogChannel(ctx.Interaction.GuildID, ""); err != nil {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to update settings: %v", err))
		}
		return ctx.Reply("📋 Moderation logging has been disabled.")
	}

	if err := database.SetModLogChannel(ctx.Interaction.GuildID, channel.ID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to update settings: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("📋 Moderation cases will now be logged to <#%s>.", channel.ID))
}
