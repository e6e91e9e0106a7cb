package economy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/economy"

	"github.com/bwmarrin/discordgo"
)

func runSafe(b *bot.Bot, userID, username string, enable bool, respond commands.Responder) {
	ctx := context.Background()
	now := time.Now()

	if err := b.Cooldowns.Require(ctx, userID, economy.ActionSafeToggle, now); err != nil {
		replyError(b, respond, username, err)
		return
	}

	if _, err := b.Ledger.SetSafeMode(ctx, userID, enable); err != nil {
		// A no-op toggle is informational and keeps the cooldown free.
		if errors.Is(err, economy.ErrAlreadyInState) {
			state := "off"
			if enable {
				state = "on"
			}
			respond(fmt.Sprintf("%s, safe mode is already **%s**.", username, state), true)
			return
		}
		replyError(b, respond, username, err)
		return
	}
	if err := b.Cooldowns.Record(ctx, userID, economy.ActionSafeToggle, now); err != nil {
		b.Log.Warn().Err(err).Str("user_id", userID).Msg("cooldown record failed")
	}

	if enable {
		respond(fmt.Sprintf("🏦 **%s**, safe mode is now **on**. You cannot raid or be raided.", username), false)
	} else {
		respond(fmt.Sprintf("⚔️ **%s**, safe mode is now **off**. You can raid and be raided again.", username), false)
	}
}

func Safe(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	// The deposit/withdraw aliases imply the direction on their own.
	invoked := strings.ToLower(strings.TrimPrefix(strings.Fields(m.Content)[0], b.Cfg.Prefix))
	var enable bool
	switch {
	case invoked == "deposit":
		enable = true
	case invoked == "withdraw":
		enable = false
	case len(args) >= 2 && strings.EqualFold(args[1], "on"):
		enable = true
	case len(args) >= 2 && strings.EqualFold(args[1], "off"):
		enable = false
	default:
		s.ChannelMessageSend(m.ChannelID, "Usage: `$safe on|off`")
		return
	}
	runSafe(b, m.Author.ID, m.Author.Username, enable, commands.MessageResponder(b, s, m.ChannelID))
}

func SafeSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commands.InteractionUser(i)
	enable := false
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "mode" {
			enable = opt.StringValue() == "on"
		}
	}
	runSafe(b, user.ID, user.Username, enable, commands.InteractionResponder(b, s, i))
}
