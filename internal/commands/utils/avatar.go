package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/discord"
)

// createAvatarCommand creates the /utils avatar subcommand
func createAvatarCommand() *discord.Command {
	return discord.NewCommand(
		"avatar",
		"Show a user's avatar",
		"utils",
		avatarHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User whose avatar to show (defaults to yourself)",
			Required:    false,
		},
	)
}

func avatarHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		user = ctx.User()
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: fmt.Sprintf("🖼️ Avatar of %s", user.Username),
		Color: 0x5865F2,
		Image: &discordgo.MessageEmbedImage{
			URL: user.AvatarURL("1024"),
		},
	})
}
