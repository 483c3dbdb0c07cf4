package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
)

// matches `<a:name:id>`, `:name:id` and bare `name:id` forms
var customEmojiRe = regexp.MustCompile(`<?(a)?:?(\w{2,32}):(\d{17,19})>?`)

// createEmojiInfoCommand creates the /utils emojiinfo subcommand
func createEmojiInfoCommand() *discord.Command {
	return discord.NewCommand(
		"emojiinfo",
		"Show details about a custom emoji",
		"utils",
		emojiInfoHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "emoji",
			Description: "The custom emoji, or the name of one from this server",
			Required:    true,
		},
	)
}

func emojiInfoHandler(ctx *discord.CommandContext) error {
	input := strings.TrimSpace(ctx.GetStringOption("emoji"))

	var name, id string
	var animated bool

	if match := customEmojiRe.FindStringSubmatch(input); match != nil {
		animated = match[1] == "a"
		name = match[2]
		id = match[3]
	} else if guild := ctx.Guild(); guild != nil {
		// Fall back to a name lookup among this guild's emojis.
		lookup := strings.Trim(input, ":")
		for _, e := range guild.Emojis {
			if strings.EqualFold(e.Name, lookup) {
				name = e.Name
				id = e.ID
				animated = e.Animated
				break
			}
		}
	}

	if id == "" {
		return ctx.ReplyEphemeral("❌ Provide a valid custom emoji, e.g. `<:name:123456789012345678>`, or the name of an emoji from this server.")
	}

	ext := "png"
	usage := fmt.Sprintf("<:%s:%s>", name, id)
	if animated {
		ext = "gif"
		usage = fmt.Sprintf("<a:%s:%s>", name, id)
	}
	url := fmt.Sprintf("https://cdn.discordapp.com/emojis/%s.%s?size=4096", id, ext)

	created, _ := discordgo.SnowflakeTimestamp(id)

	animatedStr := "No"
	if animated {
		animatedStr = "Yes"
	}

	general := strings.Join([]string{
		fmt.Sprintf("**ID:** `%s`", id),
		fmt.Sprintf("**Name:** `%s`", name),
		fmt.Sprintf("**Animated:** %s", animatedStr),
		fmt.Sprintf("**Created:** <t:%d:R>", created.Unix()),
	}, "\n")

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: fmt.Sprintf(":%s:", name),
		Color: 0x5865F2,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: url,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📋 General", Value: general, Inline: true},
			{Name: "💬 Usage", Value: fmt.Sprintf("`%s`", usage), Inline: true},
			{Name: "📥 Download", Value: fmt.Sprintf("[%s](%s)", strings.ToUpper(ext), url)},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: config.Get().EmbedFooter,
		},
	})
}
