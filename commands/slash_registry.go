package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// commandNeedsUpdate checks if an existing command needs to be updated
func commandNeedsUpdate(existing, desired *discordgo.ApplicationCommand) bool {
	if existing.Name != desired.Name {
		return true
	}
	if existing.Description != desired.Description {
		return true
	}
	if len(existing.Options) != len(desired.Options) {
		return true
	}
	for i, option := range existing.Options {
		if i >= len(desired.Options) {
			return true
		}
		desiredOption := desired.Options[i]
		if option.Name != desiredOption.Name ||
			option.Description != desiredOption.Description ||
			option.Type != desiredOption.Type ||
			option.Required != desiredOption.Required {
			return true
		}
	}
	return false
}

// RegisterAllSlashCommands syncs the registered slash commands with
// Discord: create missing ones, update drifted ones, delete leftovers.
func RegisterAllSlashCommands(s *discordgo.Session, guildID string, log zerolog.Logger) {
	existingCommands, err := s.ApplicationCommands(s.State.User.ID, guildID)
	if err != nil {
		log.Error().Err(err).Msg("fetching existing commands failed")
		return
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existingCommands {
		existingMap[cmd.Name] = cmd
	}

	for _, desired := range GetAllSlashCommands() {
		if existing, exists := existingMap[desired.Name]; exists {
			if commandNeedsUpdate(existing, desired) {
				log.Info().Str("command", desired.Name).Msg("updating slash command")
				if _, err := s.ApplicationCommandEdit(s.State.User.ID, guildID, existing.ID, desired); err != nil {
					log.Error().Err(err).Str("command", desired.Name).Msg("update failed")
				}
			}
			delete(existingMap, desired.Name)
		} else {
			log.Info().Str("command", desired.Name).Msg("creating slash command")
			if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, desired); err != nil {
				log.Error().Err(err).Str("command", desired.Name).Msg("create failed")
			}
		}
	}

	// Whatever is left exists on Discord but not in the registry.
	for _, cmd := range existingMap {
		log.Info().Str("command", cmd.Name).Msg("deleting unused slash command")
		if err := s.ApplicationCommandDelete(s.State.User.ID, guildID, cmd.ID); err != nil {
			log.Error().Err(err).Str("command", cmd.Name).Msg("delete failed")
		}
	}
}
