package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/discord"
)

// createLockCommand creates the /mod lock subcommand
func createLockCommand() *discord.Command {
	return discord.NewCommand(
		"lock",
		"Prevent everyone from sending messages in a channel",
		"mod",
		lockHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel to lock (defaults to the current one)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

func lockHandler(ctx *discord.CommandContext) error {
	channelID := ctx.Interaction.ChannelID
	if ch := ctx.GetChannelOption("channel"); ch != nil {
		channelID = ch.ID
	}

	if err := setEveryoneSendMessages(ctx, channelID, false); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to lock the channel: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("🔒 <#%s> has been locked.", channelID))
}

// setEveryoneSendMessages toggles the SendMessages permission for the
// @everyone role while preserving the rest of the overwrite.
func setEveryoneSendMessages(ctx *discord.CommandContext, channelID string, allow bool) error {
	everyoneID := ctx.Interaction.GuildID // the @everyone role id equals the guild id

	var currentAllow, currentDeny int64
	if channel, err := ctx.Session.Channel(channelID); err == nil {
		for _, ow := range channel.PermissionOverwrites {
			if ow.ID == everyoneID && ow.Type == discordgo.PermissionOverwriteTypeRole {
				currentAllow = ow.Allow
				currentDeny = ow.Deny
				break
			}
		}
	}

	if allow {
		currentDeny &^= discordgo.PermissionSendMessages
	} else {
		currentAllow &^= discordgo.PermissionSendMessages
		currentDeny |= discordgo.PermissionSendMessages
	}

	return ctx.Session.ChannelPermissionSet(
		channelID,
		everyoneID,
		discordgo.PermissionOverwriteTypeRole,
		currentAllow,
		currentDeny,
	)
}
