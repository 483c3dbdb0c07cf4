package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/logger"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.EventHandler.OnReady(onReady)
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Logged in as %s", r.User.String()), "Ready")
	logger.Info(fmt.Sprintf("📊 Serving %d guilds", len(r.Guilds)), "Ready")

	if err := s.UpdateWatchStatus(0, "over your server 🛡️"); err != nil {
		logger.Error(fmt.Sprintf("Failed to set presence: %v", err), "Ready")
	}
}
