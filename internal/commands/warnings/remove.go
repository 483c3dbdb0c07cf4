package warnings

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/internal/modlog"
	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/errors"
)

// createRemoveCommand creates the /warnings remove subcommand
func createRemoveCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"remove",
		"Remove a moderation case by its number",
		"warnings",
		func(ctx *discord.CommandContext) error { return removeHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionInteger,
			Name:         "case",
			Description:  "Case number to remove",
			Required:     true,
			Autocomplete: true,
			MinValue:     func() *float64 { v := 1.0; return &v }(),
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithAutoComplete(func(ctx *discord.CommandContext) { removeAutoComplete(ctx, ledger) })
}

func removeHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	caseID := int(ctx.GetIntOption("case"))
	if caseID <= 0 {
		return ctx.ReplyEphemeral("❌ You must specify a case number.")
	}

	// Look it up first so the reply can echo what was removed.
	removed, ok := ledger.GetByCase(ctx.Interaction.GuildID, caseID)
	if !ok {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Case #%d was not found in this server.", caseID))
	}

	if _, err := ledger.RemoveByCase(ctx.Interaction.GuildID, caseID); err != nil {
		return ctx.ReplyEphemeral("❌ Failed to remove the case. Please try again.")
	}

	go modlog.PostRemoval(ctx.Session, ctx.Interaction.GuildID, removed, ctx.User().String())

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: "✅ Case removed",
		Description: fmt.Sprintf("Case **#%d** (%s) for <@%s> has been removed.\n**Original reason:** %s",
			removed.CaseID, removed.Type, removed.UserID, removed.Reason),
		Color: 0x57F287,
	})
}

// removeAutoComplete suggests the guild's most recent cases
func removeAutoComplete(ctx *discord.CommandContext, ledger *cases.Ledger) {
	go func() {
		defer errors.RecoverMiddleware()()

		recent := ledger.GetRecent(ctx.Interaction.GuildID, 25)
		if len(recent) == 0 {
			return
		}

		choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(recent))
		for _, rec := range recent {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  choiceName(&rec),
				Value: rec.CaseID,
			})
		}

		ctx.SendAutoCompleteChoices(choices)
	}()
}

// choiceName renders a case as an autocomplete choice label. Discord caps
// choice names at 100 characters; reasons are free text and may contain
// multi-byte runes, so truncation never cuts mid-rune.
func choiceName(rec *cases.UserRecord) string {
	name := fmt.Sprintf("#%d [%s] %s", rec.CaseID, rec.Type, rec.Reason)
	if runes := []rune(name); len(runes) > 100 {
		name = string(runes[:97]) + "..."
	}
	return name
}
