package mod

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
)

// Discord caps member timeouts at 28 days
const maxMuteDuration = 28 * 24 * time.Hour

// createMuteCommand creates the /mod mute subcommand
func createMuteCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"mute",
		"Timeout a user",
		"mod",
		func(ctx *discord.CommandContext) error { return muteHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to mute",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duration",
			Description: "Duration, e.g. 10m, 1h, 2d (max 28d)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the mute",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers)
}

func muteHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}
	if user.ID == ctx.User().ID {
		return ctx.ReplyEphemeral("❌ You cannot mute yourself.")
	}

	duration, err := parseDuration(ctx.GetStringOption("duration"))
	if err != nil {
		return ctx.ReplyEphemeral("❌ Invalid duration. Use formats like `30s`, `10m`, `1h` or `2d`.")
	}
	if duration <= 0 || duration > maxMuteDuration {
		return ctx.ReplyEphemeral("❌ Duration must be between 1 second and 28 days.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = cases.DefaultReason
	}

	until := time.Now().Add(duration)
	if err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, &until); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to mute: %v", err))
	}

	go notifyUser(ctx, user, "🔇 You have been muted",
		fmt.Sprintf("**Reason:** %s\n**Until:** <t:%d:F>", reason, until.Unix()), 0xE67E22)

	rec, err := recordCase(ctx, ledger, user, cases.TypeMute, reason)
	if err != nil {
		return ctx.Reply(fmt.Sprintf("🔇 **%s** has been muted, but the case could not be saved.", user.Username))
	}

	embed := actionEmbed("🔇", "muted", user, rec)
	embed.Description += fmt.Sprintf("\n**Expires:** <t:%d:R>", until.Unix())
	return ctx.ReplyEmbed(embed)
}

// parseDuration extends time.ParseDuration with a day suffix
func parseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if strings.HasSuffix(raw, "d") {
		days, err := strconv.ParseFloat(strings.TrimSuffix(raw, "d"), 64)
		if err != nil {
			return 0, err
		}
		return time.Duration(days * float64(24*time.Hour)), nil
	}
	return time.ParseDuration(raw)
}
