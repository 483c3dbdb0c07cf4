package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/discord"
)

// createSlowmodeCommand creates the /mod slowmode subcommand
func createSlowmodeCommand() *discord.Command {
	return discord.NewCommand(
		"slowmode",
		"Set the slowmode interval for a channel",
		"mod",
		slowmodeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "seconds",
			Description: "Seconds between messages (0 disables, max 21600)",
			Required:    true,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    21600,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel to change (defaults to the current one)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

func slowmodeHandler(ctx *discord.CommandContext) error {
	seconds := int(ctx.GetIntOption("seconds"))

	channelID := ctx.Interaction.ChannelID
	if ch := ctx.GetChannelOption("channel"); ch != nil {
		channelID = ch.ID
	}

	_, err := ctx.Session.ChannelEditComplex(channelID, &discordgo.ChannelEdit{
		RateLimitPerUser: &seconds,
	})
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to set slowmode: %v", err))
	}

	if seconds == 0 {
		return ctx.Reply(fmt.Sprintf("🐇 Slowmode disabled in <#%s>.", channelID))
	}
	return ctx.Reply(fmt.Sprintf("🐢 Slowmode in <#%s> set to **%d** second(s).", channelID, seconds))
}
