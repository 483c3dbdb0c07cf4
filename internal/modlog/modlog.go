// Package modlog posts moderation case embeds to the channel a guild has
// configured with /utils setmodlog, and mirrors every case change to MQTT.
package modlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/database"
	"github.com/wardenlabs/warden/pkg/logger"
	"github.com/wardenlabs/warden/pkg/mqtt"
)

// Colors per action type
var typeColors = map[string]int{
	cases.TypeWarn:    0xFEE75C, // yellow
	cases.TypeMute:    0xE67E22, // orange
	cases.TypeUnmute:  0x57F287, // green
	cases.TypeKick:    0xE67E22, // orange
	cases.TypeBan:     0xED4245, // red
	cases.TypeUnban:   0x57F287, // green
	cases.TypeSoftban: 0xED4245, // red
}

var typeEmojis = map[string]string{
	cases.TypeWarn:    "⚠️",
	cases.TypeMute:    "🔇",
	cases.TypeUnmute:  "🔊",
	cases.TypeKick:    "👢",
	cases.TypeBan:     "🔨",
	cases.TypeUnban:   "🔓",
	cases.TypeSoftban: "🧹",
}

// PostCase sends the case to the guild's mod-log channel (if configured)
// and publishes a case-created event. Failures are logged, never fatal:
// moderation must succeed even when the log channel is gone.
func PostCase(s *discordgo.Session, guildID string, target *discordgo.User, rec *cases.Record) {
	mqtt.PublishCaseEvent(mqtt.CaseEvent{
		Action:  "created",
		GuildID: guildID,
		UserID:  target.ID,
		CaseID:  rec.CaseID,
		Type:    rec.Type,
	})

	channelID := database.ModLogChannel(guildID)
	if channelID == "" {
		return
	}

	color, ok := typeColors[rec.Type]
	if !ok {
		color = 0x95A5A6
	}
	emoji, ok := typeEmojis[rec.Type]
	if !ok {
		emoji = "📋"
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s %s | Case #%d", emoji, titleCase(rec.Type), rec.CaseID),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (`%s`)", target.Username, target.ID), Inline: true},
			{Name: "Moderator", Value: rec.ModeratorTag, Inline: true},
			{Name: "Reason", Value: rec.Reason},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: config.Get().EmbedFooter,
		},
		Timestamp: rec.Timestamp,
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Warn(fmt.Sprintf("Failed to post case #%d to mod log channel %s: %v", rec.CaseID, channelID, err), "ModLog")
	}
}

// PostRemoval announces the removal of a case in the mod-log channel
func PostRemoval(s *discordgo.Session, guildID string, removed *cases.UserRecord, moderatorTag string) {
	mqtt.PublishCaseEvent(mqtt.CaseEvent{
		Action:  "removed",
		GuildID: guildID,
		UserID:  removed.UserID,
		CaseID:  removed.CaseID,
		Type:    removed.Type,
	})

	channelID := database.ModLogChannel(guildID)
	if channelID == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🗑️ Case #%d removed", removed.CaseID),
		Color: 0x95A5A6,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("<@%s>", removed.UserID), Inline: true},
			{Name: "Removed by", Value: moderatorTag, Inline: true},
			{Name: "Original reason", Value: removed.Reason},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: config.Get().EmbedFooter,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Warn(fmt.Sprintf("Failed to post case removal #%d: %v", removed.CaseID, err), "ModLog")
	}
}

// PostModLog sends an arbitrary embed to the guild's mod-log channel.
// No-op when the guild has no mod-log channel.
func PostModLog(s *discordgo.Session, guildID string, embed *discordgo.MessageEmbed) {
	channelID := database.ModLogChannel(guildID)
	if channelID == "" {
		return
	}

	if embed.Footer == nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: config.Get().EmbedFooter}
	}
	if embed.Timestamp == "" {
		embed.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Warn(fmt.Sprintf("Failed to post to mod log channel %s: %v", channelID, err), "ModLog")
	}
}

// PostSpamLog sends an embed to the guild's spam-log channel, configured with
// /utils setspamlog. No-op when the guild has no spam-log channel.
func PostSpamLog(s *discordgo.Session, guildID string, embed *discordgo.MessageEmbed) {
	channelID := database.SpamLogChannel(guildID)
	if channelID == "" {
		return
	}

	if embed.Footer == nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: config.Get().EmbedFooter}
	}
	if embed.Timestamp == "" {
		embed.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Warn(fmt.Sprintf("Failed to post to spam log channel %s: %v", channelID, err), "SpamLog")
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
