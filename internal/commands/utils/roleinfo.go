package utils

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/discord"
)

// keyRolePermissions maps notable permission bits to display labels, in
// the order they are shown.
var keyRolePermissions = []struct {
	bit   int64
	label string
}{
	{discordgo.PermissionAdministrator, "👑 Administrator"},
	{discordgo.PermissionManageGuild, "⚙️ Manage Server"},
	{discordgo.PermissionManageRoles, "🏷️ Manage Roles"},
	{discordgo.PermissionManageChannels, "📁 Manage Channels"},
	{discordgo.PermissionManageMessages, "💬 Manage Messages"},
	{discordgo.PermissionManageWebhooks, "🔗 Manage Webhooks"},
	{discordgo.PermissionManageNicknames, "📝 Manage Nicknames"},
	{discordgo.PermissionKickMembers, "👢 Kick Members"},
	{discordgo.PermissionBanMembers, "🔨 Ban Members"},
	{discordgo.PermissionModerateMembers, "⏰ Timeout Members"},
	{discordgo.PermissionMentionEveryone, "📢 Mention Everyone"},
	{discordgo.PermissionViewAuditLogs, "📋 View Audit Log"},
}

// createRoleInfoCommand creates the /utils roleinfo subcommand
func createRoleInfoCommand() *discord.Command {
	return discord.NewCommand(
		"roleinfo",
		"Show details about a role",
		"utils",
		roleInfoHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "The role to inspect",
			Required:    true,
		},
	)
}

func roleInfoHandler(ctx *discord.CommandContext) error {
	role := ctx.GetRoleOption("role")
	if role == nil {
		return ctx.ReplyEphemeral("❌ Please specify a role.")
	}

	created, _ := discordgo.SnowflakeTimestamp(role.ID)

	colorStr := "Default"
	embedColor := 0x95A5A6
	if role.Color != 0 {
		colorStr = fmt.Sprintf("#%06X", role.Color)
		embedColor = role.Color
	}

	general := strings.Join([]string{
		fmt.Sprintf("**ID:** `%s`", role.ID),
		fmt.Sprintf("**Color:** %s", colorStr),
		fmt.Sprintf("**Position:** %d", role.Position),
		fmt.Sprintf("**Created:** <t:%d:R>", created.Unix()),
		fmt.Sprintf("**Mention:** <@&%s>", role.ID),
	}, "\n")

	var props []string
	if role.Hoist {
		props = append(props, "📌 Displayed separately")
	}
	if role.Mentionable {
		props = append(props, "💬 Mentionable")
	}
	if role.Managed {
		props = append(props, "🤖 Managed by integration")
	}
	if len(props) == 0 {
		props = append(props, "*none*")
	}

	var perms []string
	for _, kp := range keyRolePermissions {
		if role.Permissions&kp.bit != 0 {
			perms = append(perms, kp.label)
		}
	}
	if len(perms) == 0 {
		perms = append(perms, "*no key permissions*")
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: fmt.Sprintf("🏷️ %s", role.Name),
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📋 General", Value: general, Inline: true},
			{Name: "⚙️ Properties", Value: strings.Join(props, "\n"), Inline: true},
			{Name: "🔐 Key Permissions", Value: strings.Join(perms, "\n")},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: config.Get().EmbedFooter,
		},
	})
}
