package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/discord"
)

// createUnlockCommand creates the /mod unlock subcommand
func createUnlockCommand() *discord.Command {
	return discord.NewCommand(
		"unlock",
		"Allow everyone to send messages in a channel again",
		"mod",
		unlockHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel to unlock (defaults to the current one)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

func unlockHandler(ctx *discord.CommandContext) error {
	channelID := ctx.Interaction.ChannelID
	if ch := ctx.GetChannelOption("channel"); ch != nil {
		channelID = ch.ID
	}

	if err := setEveryoneSendMessages(ctx, channelID, true); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to unlock the channel: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("🔓 <#%s> has been unlocked.", channelID))
}
