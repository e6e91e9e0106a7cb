package commands

import (
	"strings"
	"time"

	"CoinBot/bot"
	"CoinBot/utils"

	"github.com/bwmarrin/discordgo"
)

// limiter guards the prefix transport against command spam. Economy
// cooldowns are enforced separately, per action, in the store.
var limiter = utils.NewRateLimiter(15, time.Minute)

// HandleMessage routes a prefix message to its registered handler.
func HandleMessage(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, b.Cfg.Prefix) {
		return
	}
	fields := strings.Fields(strings.TrimPrefix(m.Content, b.Cfg.Prefix))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	if canonical, ok := CommandAliases[name]; ok {
		name = canonical
	}
	handler, ok := CommandMap[name]
	if !ok {
		return
	}
	if !limiter.Allow(m.Author.ID) {
		return
	}
	b.Log.Info().
		Str("command", name).
		Str("user_id", m.Author.ID).
		Str("transport", "prefix").
		Msg("dispatch")
	handler(b, s, m, fields)
}

// HandleInteraction routes a slash-command interaction. The reply is
// deferred immediately so the platform deadline is met regardless of
// how long the store transaction takes; handlers deliver the result as
// a follow-up.
func HandleInteraction(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	handler, ok := SlashCommandHandlers[name]
	if !ok {
		return
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		b.Log.Error().Err(err).Str("command", name).Msg("defer failed")
		return
	}
	b.Log.Info().
		Str("command", name).
		Str("user_id", InteractionUserID(i)).
		Str("transport", "slash").
		Msg("dispatch")
	handler(b, s, i)
}

// InteractionUser returns the invoking user for guild or DM interactions.
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// InteractionUserID is InteractionUser for log fields; empty when the
// payload carries no user.
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if u := InteractionUser(i); u != nil {
		return u.ID
	}
	return ""
}
