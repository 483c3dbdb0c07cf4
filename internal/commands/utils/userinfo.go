package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/errors"
)

// createUserInfoCommand creates the /utils userinfo subcommand
func createUserInfoCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"userinfo",
		"Show information about a user",
		"utils",
		func(ctx *discord.CommandContext) error { return userInfoHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to look up (defaults to yourself)",
			Required:    false,
		},
	)
}

func userInfoHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("user")
		if user == nil {
			user = ctx.User()
		}

		created, _ := discordgo.SnowflakeTimestamp(user.ID)

		fields := []*discordgo.MessageEmbedField{
			{Name: "ID", Value: user.ID, Inline: true},
			{Name: "Bot", Value: fmt.Sprintf("%t", user.Bot), Inline: true},
			{Name: "Account created", Value: fmt.Sprintf("<t:%d:D>", created.Unix()), Inline: true},
		}

		member, err := ctx.Session.GuildMember(ctx.Interaction.GuildID, user.ID)
		if err == nil && member != nil {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name: "Joined", Value: fmt.Sprintf("<t:%d:D>", member.JoinedAt.Unix()), Inline: true,
			})
			if len(member.Roles) > 0 {
				mentions := make([]string, 0, len(member.Roles))
				for _, id := range member.Roles {
					mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
				}
				roleList := strings.Join(mentions, " ")
				if len(roleList) > 1024 {
					roleList = fmt.Sprintf("%d roles", len(member.Roles))
				}
				fields = append(fields, &discordgo.MessageEmbedField{
					Name: "Roles", Value: roleList,
				})
			}
		}

		// Case count is visible to moderators only.
		if ctx.HasPermission(discordgo.PermissionModerateMembers) {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:   "Moderation cases",
				Value:  fmt.Sprintf("%d", ledger.Count(ctx.Interaction.GuildID, user.ID)),
				Inline: true,
			})
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("👤 %s", user.String()),
			Color: 0x5865F2,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: user.AvatarURL("256"),
			},
			Fields: fields,
			Footer: &discordgo.MessageEmbedFooter{
				Text: config.Get().EmbedFooter,
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}
