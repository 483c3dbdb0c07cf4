// Package guard screens incoming messages for auto-moderation. It
// currently enforces a mass-mention filter and keeps a bounded in-memory
// log of detections for moderators to review with /utils spamlogs.
package guard

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/internal/modlog"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/logger"
)

// how many detections to keep
const logLimit = 50

// Detection is a recorded auto-moderation hit
type Detection struct {
	Type      string
	UserID    string
	UserTag   string
	ChannelID string
	Content   string
	Time      time.Time
}

// Log stores recent detections, newest first
type Log struct {
	mu      sync.Mutex
	entries []Detection
}

// NewLog creates an empty detection log
func NewLog() *Log {
	return &Log{}
}

// Record prepends a detection, evicting the oldest entry when the log
// is full.
func (l *Log) Record(d Detection) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Detection{d}, l.entries...)
	if len(l.entries) > logLimit {
		l.entries = l.entries[:logLimit]
	}
}

// Recent returns up to n detections, newest first
func (l *Log) Recent(n int) []Detection {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Detection, n)
	copy(out, l.entries[:n])
	return out
}

// HandleMessage screens an incoming message. Members without the
// Administrator or Manage Messages permission may not ping @everyone
// or @here; offending messages are deleted, the author is warned by DM
// and in channel, and the incident is posted to the mod-log channel.
func HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate, log *Log) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if !m.MentionEveryone && !strings.Contains(m.Content, "@everyone") && !strings.Contains(m.Content, "@here") {
		return
	}
	if m.Author.ID == config.Get().OwnerID {
		return
	}
	perms, err := s.State.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err == nil && perms&(discordgo.PermissionAdministrator|discordgo.PermissionManageMessages) != 0 {
		return
	}

	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		logger.Warn(fmt.Sprintf("Failed to delete mass mention by %s: %v", m.Author.ID, err), "Guard")
	}

	if dm, err := s.UserChannelCreate(m.Author.ID); err == nil {
		// Closed DMs are the user's choice, nothing to do about it.
		s.ChannelMessageSend(dm.ID, "You are not allowed to mention everyone or here in this server. This action has been logged.")
	}

	content := m.Content
	if runes := []rune(content); len(runes) > 1024 {
		content = string(runes[:1024])
	}
	if content == "" {
		content = "*none*"
	}
	modlog.PostModLog(s, m.GuildID, &discordgo.MessageEmbed{
		Title:       "🚨 Unauthorized Mass Mention",
		Description: fmt.Sprintf("<@%s> (%s, ID: %s) tried to mention everyone or here.", m.Author.ID, m.Author.String(), m.Author.ID),
		Color:       0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Channel", Value: fmt.Sprintf("<#%s>", m.ChannelID), Inline: true},
			{Name: "Message Content", Value: content},
		},
	})

	log.Record(Detection{
		Type:      "mass-mention",
		UserID:    m.Author.ID,
		UserTag:   m.Author.String(),
		ChannelID: m.ChannelID,
		Content:   m.Content,
		Time:      time.Now(),
	})

	s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>, you are not allowed to mention everyone or here!", m.Author.ID),
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: []string{m.Author.ID},
		},
	})
}
