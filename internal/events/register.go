// Package events provides a registry for organizing bot events.
// Events are organized by category (guild, member, message, etc.)
package events

import (
	"github.com/wardenlabs/warden/internal/guard"
	"github.com/wardenlabs/warden/internal/snipe"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/logger"
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient, snipes *snipe.Cache, guardLog *guard.Log) {
	logger.System("📋 Registering bot events...", "Events")

	RegisterReadyEvent(client)
	RegisterGuildEvents(client)
	RegisterMemberEvents(client)
	RegisterMessageEvents(client, snipes, guardLog)

	logger.Success("✅ All events registered", "Events")
}
