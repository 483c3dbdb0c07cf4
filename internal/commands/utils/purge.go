package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/errors"
	"github.com/wardenlabs/warden/pkg/logger"
)

// createPurgeCommand creates the /utils purge subcommand
func createPurgeCommand() *discord.Command {
	return discord.NewCommand(
		"purge",
		"Bulk delete recent messages in this channel",
		"utils",
		purgeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: "How many messages to delete (1-100)",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    100,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Only delete messages from this user",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "contains",
			Description: "Only delete messages containing this text",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "bots",
			Description: "Only delete messages from bots",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "attachments",
			Description: "Only delete messages with attachments",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

func purgeHandler(ctx *discord.CommandContext) error {
	amount := int(ctx.GetIntOption("amount"))
	filterUser := ctx.GetUserOption("user")
	contains := strings.ToLower(ctx.GetStringOption("contains"))
	botsOnly := ctx.GetBoolOption("bots")
	attachmentsOnly := ctx.GetBoolOption("attachments")

	if err := ctx.Defer(); err != nil {
		return err
	}

	go func() {
		defer errors.RecoverMiddleware()()

		messages, err := ctx.Session.ChannelMessages(ctx.Interaction.ChannelID, 100, "", "", "")
		if err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Failed to fetch messages: %v", err))
			return
		}

		// Bulk delete rejects messages older than 14 days.
		cutoff := time.Now().Add(-14 * 24 * time.Hour)

		ids := make([]string, 0, amount)
		for _, msg := range messages {
			if len(ids) >= amount {
				break
			}
			if msg.Timestamp.Before(cutoff) {
				continue
			}
			if filterUser != nil && msg.Author.ID != filterUser.ID {
				continue
			}
			if contains != "" && !strings.Contains(strings.ToLower(msg.Content), contains) {
				continue
			}
			if botsOnly && !msg.Author.Bot {
				continue
			}
			if attachmentsOnly && len(msg.Attachments) == 0 {
				continue
			}
			ids = append(ids, msg.ID)
		}

		if len(ids) == 0 {
			ctx.EditReply("ℹ️ No messages matched the given filters.")
			return
		}

		if err := ctx.Session.ChannelMessagesBulkDelete(ctx.Interaction.ChannelID, ids); err != nil {
			logger.Error(fmt.Sprintf("Bulk delete failed in %s: %v", ctx.Interaction.ChannelID, err), "Purge")
			ctx.EditReply(fmt.Sprintf("❌ Failed to delete messages: %v", err))
			return
		}

		ctx.EditReply(fmt.Sprintf("🧹 Deleted **%d** message(s).", len(ids)))
	}()

	return nil
}
