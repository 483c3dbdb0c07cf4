package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/logger"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnGuildMemberAdd(onGuildMemberAdd)
	client.EventHandler.OnGuildMemberRemove(onGuildMemberRemove)
}

func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Debug(fmt.Sprintf("Member joined %s: %s", m.GuildID, m.User.String()), "Member")
}

func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Debug(fmt.Sprintf("Member left %s: %s", m.GuildID, m.User.String()), "Member")
}
