// Package database - per-guild settings service built on the DataManager.
package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/wardenlabs/warden/pkg/models"
)

// GetGuildSettings returns the stored settings for a guild, or nil if the
// guild has never been configured.
func GetGuildSettings(guildID string) (*models.GuildSettings, error) {
	if GlobalSettingsDM == nil {
		return nil, fmt.Errorf("settings manager not initialized")
	}
	return GlobalSettingsDM.Get(bson.M{"guildId": guildID})
}

// SetModLogChannel sets or clears the guild's moderation log channel.
// An empty channelID disables mod-log posting for the guild.
func SetModLogChannel(guildID, channelID string) error {
	if GlobalSettingsDM == nil {
		return fmt.Errorf("settings manager not initialized")
	}

	settings, err := GetGuildSettings(guildID)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = &models.GuildSettings{GuildID: guildID}
	}
	settings.ModLogChannel = channelID

	_, err = GlobalSettingsDM.Set(bson.M{"guildId": guildID}, settings)
	return err
}

// ModLogChannel returns the guild's configured mod-log channel, or empty if
// none is set or the settings store is unavailable.
func ModLogChannel(guildID string) string {
	settings, err := GetGuildSettings(guildID)
	if err != nil || settings == nil {
		return ""
	}
	return settings.ModLogChannel
}

// SetSpamLogChannel sets or clears the guild's spam log channel.
// An empty channelID disables spam-log posting for the guild.
func SetSpamLogChannel(guildID, channelID string) error {
	if GlobalSettingsDM == nil {
		return fmt.Errorf("settings manager not initialized")
	}

	settings, err := GetGuildSettings(guildID)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = &models.GuildSettings{GuildID: guildID}
	}
	settings.SpamLogChannel = channelID

	_, err = GlobalSettingsDM.Set(bson.M{"guildId": guildID}, settings)
	return err
}

// SpamLogChannel returns the guild's configured spam-log channel, or empty if
// none is set or the settings store is unavailable.
func SpamLogChannel(guildID string) string {
	settings, err := GetGuildSettings(guildID)
	if err != nil || settings == nil {
		return ""
	}
	return settings.SpamLogChannel
}
