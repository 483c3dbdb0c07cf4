package events

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/logger"
)

// RegisterGuildEvents registers all guild-related event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnGuildCreate(onGuildCreate)
	client.EventHandler.OnGuildDelete(onGuildDelete)
}

// onGuildCreate is called when the bot joins a server. GuildCreate also
// fires for every guild during startup, so only fresh joins get the
// welcome message.
func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.JoinedAt.Compare(time.Now().Add(-10*time.Second)) < 0 {
		return
	}

	logger.Info(fmt.Sprintf("➕ Joined guild: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Members: %d | Channels: %d", g.MemberCount, len(g.Channels)), "Guild")

	if g.SystemChannelID == "" {
		return
	}

	welcomeEmbed := &discordgo.MessageEmbed{
		Title:       "Thanks for adding me! 🛡️",
		Description: "Hi, I'm **Warden**. Use `/utils help` to see everything I can do.",
		Color:       0x57F287,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🔧 Moderation",
				Value:  "Warn, mute, kick and ban with `/mod`",
				Inline: true,
			},
			{
				Name:   "📋 Cases",
				Value:  "Every action gets a numbered case. Review them with `/warnings view`",
				Inline: true,
			},
			{
				Name:   "📝 Mod log",
				Value:  "Set a log channel with `/utils setmodlog`",
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: config.Get().EmbedFooter,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(g.SystemChannelID, welcomeEmbed); err != nil {
		logger.Error(fmt.Sprintf("Failed to send welcome message: %v", err), "Guild")
	}
}

// onGuildDelete is called when the bot is removed from a server
func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	logger.Info(fmt.Sprintf("➖ Removed from guild ID: %s", g.ID), "Guild")
}
