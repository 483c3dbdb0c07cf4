package events

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/internal/guard"
	"github.com/wardenlabs/warden/internal/modlog"
	"github.com/wardenlabs/warden/internal/snipe"
	"github.com/wardenlabs/warden/pkg/discord"
)

// RegisterMessageEvents registers all message-related event handlers.
// Incoming messages run through the auto-moderation guard; deleted and
// edited messages are captured into the snipe cache and mirrored to the
// guild's spam-log channel when one is configured.
func RegisterMessageEvents(client *discord.ExtendedClient, snipes *snipe.Cache, guardLog *guard.Log) {
	client.EventHandler.OnMessageCreate(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		guard.HandleMessage(s, m, guardLog)
	})
	client.EventHandler.OnMessageDelete(func(s *discordgo.Session, m *discordgo.MessageDelete) {
		onMessageDelete(s, m, snipes)
	})
	client.EventHandler.OnMessageUpdate(func(s *discordgo.Session, m *discordgo.MessageUpdate) {
		onMessageUpdate(s, m, snipes)
	})
}

func onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete, snipes *snipe.Cache) {
	// The delete payload only carries ids; content comes from the state
	// cache and may be gone already.
	if m.BeforeDelete == nil || m.BeforeDelete.Author == nil || m.BeforeDelete.Author.Bot {
		return
	}

	snipes.Push(m.ChannelID, snipe.Message{
		AuthorID:  m.BeforeDelete.Author.ID,
		AuthorTag: m.BeforeDelete.Author.String(),
		Content:   m.BeforeDelete.Content,
		DeletedAt: time.Now(),
	})

	content := m.BeforeDelete.Content
	if content == "" {
		content = "*no text content*"
	}
	modlog.PostSpamLog(s, m.GuildID, &discordgo.MessageEmbed{
		Title:       "🗑️ Message deleted",
		Description: content,
		Color:       0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Author", Value: fmt.Sprintf("%s (<@%s>)", m.BeforeDelete.Author.String(), m.BeforeDelete.Author.ID), Inline: true},
			{Name: "Channel", Value: fmt.Sprintf("<#%s>", m.ChannelID), Inline: true},
		},
	})
}

func onMessageUpdate(s *discordgo.Session, m *discordgo.MessageUpdate, snipes *snipe.Cache) {
	if m.Author == nil || m.Author.Bot || m.BeforeUpdate == nil {
		return
	}
	// Embed unfurls fire updates without a content change.
	if m.BeforeUpdate.Content == m.Content {
		return
	}

	snipes.Push(m.ChannelID, snipe.Message{
		AuthorID:   m.Author.ID,
		AuthorTag:  m.Author.String(),
		Content:    m.Content,
		OldContent: m.BeforeUpdate.Content,
		Edited:     true,
		DeletedAt:  time.Now(),
	})

	modlog.PostSpamLog(s, m.GuildID, &discordgo.MessageEmbed{
		Title:       "✏️ Message edited",
		Description: fmt.Sprintf("**Before:** %s\n**After:** %s", m.BeforeUpdate.Content, m.Content),
		Color:       0xFEE75C,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Author", Value: fmt.Sprintf("%s (<@%s>)", m.Author.String(), m.Author.ID), Inline: true},
			{Name: "Channel", Value: fmt.Sprintf("<#%s>", m.ChannelID), Inline: true},
		},
	})
}
