// Package dev contains owner-only commands that are registered in the
// development guild only.
package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/database"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/errors"
	"github.com/wardenlabs/warden/pkg/logger"
)

// createEvalCommand creates the /dev eval command
func createEvalCommand(ledger *cases.Ledger) *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evaluate Go code against the running bot (dangerous)",
		"dev",
		func(ctx *discord.CommandContext) error { return evalHandler(ctx, ledger) },
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "Go code or expression to evaluate",
			Required:    true,
		},
	)
}

func evalHandler(ctx *discord.CommandContext, ledger *cases.Ledger) error {
	go func() {
		defer errors.RecoverMiddleware()()
		start := time.Now()

		if !isOwner(ctx.User().ID) {
			ctx.ReplyEphemeral("❌ **Access denied:** this command is restricted to the bot owner.")
			return
		}

		ctx.Defer()

		code := ctx.GetStringOption("code")
		code = strings.TrimPrefix(code, "```go")
		code = strings.TrimPrefix(code, "```")
		code = strings.TrimSuffix(code, "```")
		code = strings.TrimSpace(code)

		i := interp.New(interp.Options{})

		if err := i.Use(stdlib.Symbols); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Failed to load stdlib: %v", err))
			return
		}

		// Expose the live bot state so scripts can poke at it directly.
		botExports := map[string]reflect.Value{
			"Ctx":     reflect.ValueOf(ctx),
			"Bot":     reflect.ValueOf(ctx.Client),
			"Session": reflect.ValueOf(ctx.Session),
			"Ledger":  reflect.ValueOf(ledger),
			"DB":      reflect.ValueOf(database.Get()),
			"Config":  reflect.ValueOf(config.Get()),
		}

		if err := i.Use(interp.Exports{
			"github.com/wardenlabs/warden/internal/commands/dev/dev": botExports,
		}); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Failed to register bot exports: %v", err))
			return
		}

		if _, err := i.Eval(`import . "github.com/wardenlabs/warden/internal/commands/dev"`); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Failed to import bot exports: %v", err))
			return
		}

		res, err := i.Eval(code)

		var output string
		if err != nil {
			output = fmt.Sprintf("❌ **Evaluation error:**\n```go\n%v\n```", err)
		} else {
			resStr := "nil"
			if res.IsValid() {
				resStr = fmt.Sprintf("%#v", res.Interface())
			}
			if runes := []rune(resStr); len(runes) > 1900 {
				resStr = string(runes[:1900]) + "... (truncated)"
			}
			output = fmt.Sprintf("✅ **Result:**\n```go\n%s\n```", resStr)
		}

		logger.Debug(fmt.Sprintf("Eval finished in %s", time.Since(start)), "DevEval")
		ctx.EditReply(output)
	}()
	return nil
}

func isOwner(userID string) bool {
	ownerID := config.Get().OwnerID
	return ownerID != "" && userID == ownerID
}
