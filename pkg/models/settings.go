// Package models holds the document types stored in MongoDB.
package models

// GuildSettings holds per-guild bot configuration.
// A zero MaxWarnings means the global default applies.
type GuildSettings struct {
	GuildID        string `bson:"guildId" json:"guildId"`
	ModLogChannel  string `bson:"modLogChannel,omitempty" json:"modLogChannel,omitempty"`
	SpamLogChannel string `bson:"spamLogChannel,omitempty" json:"spamLogChannel,omitempty"`
	MaxWarnings    int    `bson:"maxWarnings,omitempty" json:"maxWarnings,omitempty"`
}
