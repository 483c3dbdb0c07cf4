package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "test" {
		t.Errorf("Name = %v, want %v", cmd.Name, "test")
	}

	if cmd.Description != "Test command" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Test command")
	}

	if cmd.Category != "test" {
		t.Errorf("Category = %v, want %v", cmd.Category, "test")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

func TestCommandWithOptions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "test-option",
		Description: "Test option",
		Required:    true,
	}

	cmd := NewCommand("test", "Test command", "test", handler).
		WithOptions(option)

	if cmd.Options == nil {
		t.Fatal("Options is nil")
	}

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}

	if cmd.Options[0].Name != "test-option" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "test-option")
	}
}

func TestCommandBuilderChain(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "mod", handler).
		WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers).
		AsDev()

	if cmd.UserPermissions != discordgo.PermissionBanMembers {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionBanMembers)
	}

	if cmd.BotPermissions != discordgo.PermissionBanMembers {
		t.Errorf("BotPermissions = %v, want %v", cmd.BotPermissions, discordgo.PermissionBanMembers)
	}

	if !cmd.IsDev {
		t.Error("AsDev() did not mark the command as dev-only")
	}
}

func TestToApplicationCommandSetsDefaultPermissions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("ban", "Ban a user", "mod", handler).
		WithUserPermissions(discordgo.PermissionBanMembers)

	appCmd := cmd.ToApplicationCommand()
	if appCmd.DefaultMemberPermissions == nil {
		t.Fatal("DefaultMemberPermissions not set")
	}
	if *appCmd.DefaultMemberPermissions != discordgo.PermissionBanMembers {
		t.Errorf("DefaultMemberPermissions = %v, want %v", *appCmd.DefaultMemberPermissions, discordgo.PermissionBanMembers)
	}

	plain := NewCommand("ping", "Ping", "utils", handler).ToApplicationCommand()
	if plain.DefaultMemberPermissions != nil {
		t.Error("DefaultMemberPermissions should be nil for unrestricted commands")
	}
}

func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	if cc.Size() != 0 {
		t.Errorf("Size() = %v, want 0", cc.Size())
	}

	handler := func(ctx *CommandContext) error {
		return nil
	}
	cmd := NewCommand("test", "Test command", "test", handler)

	cc.Set("test", cmd)

	if cc.Size() != 1 {
		t.Errorf("Size() = %v, want 1", cc.Size())
	}

	got, ok := cc.Get("test")
	if !ok {
		t.Fatal("Get() did not find the command")
	}
	if got != cmd {
		t.Error("Get() returned a different command")
	}

	if _, ok := cc.Get("missing"); ok {
		t.Error("Get() found a command that was never registered")
	}

	all := cc.All()
	if len(all) != 1 {
		t.Errorf("All() returned %v commands, want 1", len(all))
	}
}

func TestFindOptionRecursesIntoSubcommands(t *testing.T) {
	options := []*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name: "warn",
			Type: discordgo.ApplicationCommandOptionSubCommand,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "reason", Type: discordgo.ApplicationCommandOptionString, Value: "spam"},
			},
		},
	}

	found := findOption(options, "reason")
	if found == nil {
		t.Fatal("findOption() did not find the nested option")
	}
	if found.Value != "spam" {
		t.Errorf("Value = %v, want spam", found.Value)
	}

	if findOption(options, "missing") != nil {
		t.Error("findOption() found an option that does not exist")
	}
}
