// Package mod implements the /mod command group: moderation actions that
// all record a numbered case in the warnings ledger.
package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/internal/modlog"
	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/logger"
)

// recordCase stores a case for the target and posts it to the mod log.
// The returned record carries the assigned case id.
func recordCase(ctx *discord.CommandContext, ledger *cases.Ledger, target *discordgo.User, actionType, reason string) (*cases.Record, error) {
	rec, err := ledger.Add(ctx.Interaction.GuildID, target.ID, cases.Entry{
		ModeratorID:  ctx.User().ID,
		ModeratorTag: ctx.User().String(),
		Reason:       reason,
		Type:         actionType,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to record %s case for %s: %v", actionType, target.ID, err), "Mod")
		return nil, err
	}

	go modlog.PostCase(ctx.Session, ctx.Interaction.GuildID, target, rec)
	return rec, nil
}

// notifyUser DMs the target about an action taken against them. DM
// failures are expected (closed DMs) and silently ignored.
func notifyUser(ctx *discord.CommandContext, target *discordgo.User, title, description string, color int) {
	channel, err := ctx.Session.UserChannelCreate(target.ID)
	if err != nil {
		return
	}

	guildName := ctx.Interaction.GuildID
	if g := ctx.Guild(); g != nil {
		guildName = g.Name
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**Server:** %s\n%s", guildName, description),
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: config.Get().EmbedFooter,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	_, _ = ctx.Session.ChannelMessageSendEmbed(channel.ID, embed)
}

// actionEmbed builds the public confirmation embed for a moderation action
func actionEmbed(emoji, action string, target *discordgo.User, rec *cases.Record) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: fmt.Sprintf("%s **%s** has been %s.\n**Reason:** %s\n**Case:** #%d",
			emoji, target.Username, action, rec.Reason, rec.CaseID),
		Color: 0x5865F2,
		Footer: &discordgo.MessageEmbedFooter{
			Text: config.Get().EmbedFooter,
		},
	}
}
