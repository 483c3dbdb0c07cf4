package utils

import (
	"fmt"

	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/errors"
)

// createPingCommand creates the /utils ping subcommand
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"Check the bot's latency",
		"utils",
		pingHandler,
	)
}

func pingHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		latency := ctx.Client.Session.HeartbeatLatency().Milliseconds()
		ctx.Reply(fmt.Sprintf("🏓 Pong! Latency: %dms", latency))
	}()
	return nil
}
