package utils

import (
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Show the command list",
		"utils",
		helpHandler,
	)
}

func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.ReplyEphemeral(
			"📖 **Warden Help**\n\n" +
				"**Moderation:**\n" +
				"• `/mod warn <user> [reason] [silent]` - Warn a user\n" +
				"• `/mod ban <user> [reason] [days]` - Ban a user\n" +
				"• `/mod kick <user> [reason]` - Kick a user\n" +
				"• `/mod mute <user> <duration> [reason]` - Timeout a user\n" +
				"• `/mod unmute <user> [reason]` - Remove a timeout\n" +
				"• `/mod softban <user> [reason] [days]` - Ban + unban to purge messages\n" +
				"• `/mod unban <userid> [reason]` - Unban a user by id\n" +
				"• `/mod lock [channel]` / `/mod unlock [channel]` - Lock or unlock a channel\n" +
				"• `/mod slowmode <seconds> [channel]` - Set channel slowmode\n\n" +
				"**Cases:**\n" +
				"• `/warnings view [user]` - List a user's cases\n" +
				"• `/warnings remove <case>` - Remove a case by number\n" +
				"• `/warnings clear <user>` - Clear all of a user's cases\n" +
				"• `/utils modlogs [user]` - Recent cases and statistics\n\n" +
				"**Utility:**\n" +
				"• `/utils ping` - Check the latency\n" +
				"• `/utils stats` - Bot statistics\n" +
				"• `/utils purge <amount> [filters]` - Bulk delete messages\n" +
				"• `/utils setmodlog [channel]` - Configure the mod-log channel\n" +
				"• `/utils setspamlog [channel]` - Configure the message/spam log channel\n" +
				"• `/utils spamlogs` - Recent auto-moderation detections\n" +
				"• `/utils serverinfo` / `/utils userinfo [user]` / `/utils avatar [user]`\n" +
				"• `/utils roleinfo <role>` / `/utils emojiinfo <emoji>`\n" +
				"• `/utils snipe` - Show the last deleted message",
		)
	}()
	return nil
}
