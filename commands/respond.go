package commands

import (
	"CoinBot/bot"

	"github.com/bwmarrin/discordgo"
)

// Responder abstracts the reply channel so command logic is written once
// for both transports. ephemeral is honored only where the transport
// supports it.
type Responder func(content string, ephemeral bool)

// MessageResponder replies in the channel a prefix command came from.
func MessageResponder(b *bot.Bot, s *discordgo.Session, channelID string) Responder {
	return func(content string, _ bool) {
		if _, err := s.ChannelMessageSend(channelID, content); err != nil {
			b.Log.Error().Err(err).Str("channel_id", channelID).Msg("send failed")
		}
	}
}

// InteractionResponder sends a follow-up to an already-deferred
// interaction.
func InteractionResponder(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) Responder {
	return func(content string, ephemeral bool) {
		var flags discordgo.MessageFlags
		if ephemeral {
			flags = discordgo.MessageFlagsEphemeral
		}
		_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: content,
			Flags:   flags,
		})
		if err != nil {
			b.Log.Error().Err(err).Str("command", i.ApplicationCommandData().Name).Msg("followup failed")
		}
	}
}
