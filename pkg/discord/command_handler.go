// Package discord provides the command handler for loading and registering commands.
package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/logger"
)

// CommandHandler manages command loading and registration
type CommandHandler struct {
	client           *ExtendedClient
	slashCommands    []*discordgo.ApplicationCommand
	slashCommandsDev []*discordgo.ApplicationCommand
}

// NewCommandHandler creates a new CommandHandler
func NewCommandHandler(client *ExtendedClient) *CommandHandler {
	return &CommandHandler{
		client:           client,
		slashCommands:    make([]*discordgo.ApplicationCommand, 0),
		slashCommandsDev: make([]*discordgo.ApplicationCommand, 0),
	}
}

// RegisterCommand adds a top-level command to the handler
func (ch *CommandHandler) RegisterCommand(cmd *Command) {
	ch.client.Commands.Set(cmd.Name, cmd)

	appCmd := cmd.ToApplicationCommand()

	if cmd.IsDev {
		ch.slashCommandsDev = append(ch.slashCommandsDev, appCmd)
	} else {
		ch.slashCommands = append(ch.slashCommands, appCmd)
	}

	logger.Debug("Registered command: "+cmd.Name, "CommandHandler")
}

// BuildCommandGroup creates a command group with subcommands. Each subcommand
// is routed under the dotted name "<group>.<sub>". Group-level default member
// permissions are left to the caller; per-subcommand permissions are enforced
// at dispatch time.
func (ch *CommandHandler) BuildCommandGroup(name, description string, subcommands ...*Command) *discordgo.ApplicationCommand {
	options := make([]*discordgo.ApplicationCommandOption, 0, len(subcommands))

	for _, cmd := range subcommands {
		fullName := name + "." + cmd.Name
		ch.client.Commands.Set(fullName, cmd)

		opt := &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        cmd.Name,
			Description: cmd.Description,
			Options:     cmd.Options,
		}
		options = append(options, opt)
		logger.Debug("Registered subcommand: "+fullName, "CommandHandler")
	}

	return &discordgo.ApplicationCommand{
		Name:        name,
		Description: description,
		Options:     options,
	}
}

// RegisterCommands registers all slash commands with Discord
func (ch *CommandHandler) RegisterCommands() {
	cfg := config.Get()

	logger.Info("Registering global commands...", "CommandHandler")

	for _, cmd := range ch.slashCommands {
		_, err := ch.client.Session.ApplicationCommandCreate(
			ch.client.Session.State.User.ID,
			"",
			cmd,
		)
		if err != nil {
			logger.Error("Error registering command "+cmd.Name+": "+err.Error(), "CommandHandler")
		}
	}

	logger.Success("Global commands registered.", "CommandHandler")

	if cfg.DevGuildID != "" && len(ch.slashCommandsDev) > 0 {
		logger.Info("Registering dev commands in guild "+cfg.DevGuildID+"...", "CommandHandler")

		for _, cmd := range ch.slashCommandsDev {
			_, err := ch.client.Session.ApplicationCommandCreate(
				ch.client.Session.State.User.ID,
				cfg.DevGuildID,
				cmd,
			)
			if err != nil {
				logger.Error("Error registering dev command "+cmd.Name+": "+err.Error(), "CommandHandler")
			}
		}

		logger.Success("Dev commands registered.", "CommandHandler")
	}
}

// UnregisterCommands removes all registered commands from Discord
func (ch *CommandHandler) UnregisterCommands() error {
	commands, err := ch.client.Session.ApplicationCommands(ch.client.Session.State.User.ID, "")
	if err != nil {
		return err
	}

	for _, cmd := range commands {
		err := ch.client.Session.ApplicationCommandDelete(ch.client.Session.State.User.ID, "", cmd.ID)
		if err != nil {
			logger.Error("Error deleting command "+cmd.Name+": "+err.Error(), "CommandHandler")
		}
	}

	logger.Success("Global commands removed.", "CommandHandler")
	return nil
}

// ListGlobalCommands fetches the globally registered commands from Discord
func (ch *CommandHandler) ListGlobalCommands() ([]*discordgo.ApplicationCommand, error) {
	return ch.client.Session.ApplicationCommands(ch.client.Session.State.User.ID, "")
}

// ListGuildCommands fetches the commands registered in a specific guild
func (ch *CommandHandler) ListGuildCommands(guildID string) ([]*discordgo.ApplicationCommand, error) {
	return ch.client.Session.ApplicationCommands(ch.client.Session.State.User.ID, guildID)
}

// UnregisterGuildCommands removes all commands registered in a guild
func (ch *CommandHandler) UnregisterGuildCommands(guildID string) error {
	commands, err := ch.ListGuildCommands(guildID)
	if err != nil {
		return err
	}

	for _, cmd := range commands {
		err := ch.client.Session.ApplicationCommandDelete(ch.client.Session.State.User.ID, guildID, cmd.ID)
		if err != nil {
			logger.Error("Error deleting guild command "+cmd.Name+": "+err.Error(), "CommandHandler")
		}
	}

	logger.Success("Guild commands removed for "+guildID+".", "CommandHandler")
	return nil
}

// SyncCommands replaces the global command set in one bulk overwrite,
// which also drops any stale commands Discord still has.
func (ch *CommandHandler) SyncCommands() error {
	_, err := ch.client.Session.ApplicationCommandBulkOverwrite(
		ch.client.Session.State.User.ID,
		"",
		ch.slashCommands,
	)
	if err != nil {
		return err
	}

	logger.Success("Global commands synced.", "CommandHandler")
	return nil
}

// AddGlobalCommand adds a prebuilt application command to the global list
func (ch *CommandHandler) AddGlobalCommand(cmd *discordgo.ApplicationCommand) {
	ch.slashCommands = append(ch.slashCommands, cmd)
}

// AddDevCommand adds a prebuilt application command to the dev list
func (ch *CommandHandler) AddDevCommand(cmd *discordgo.ApplicationCommand) {
	ch.slashCommandsDev = append(ch.slashCommandsDev, cmd)
}

// GlobalCommands returns the application commands registered globally
func (ch *CommandHandler) GlobalCommands() []*discordgo.ApplicationCommand {
	return ch.slashCommands
}
