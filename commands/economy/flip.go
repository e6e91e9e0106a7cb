package economy

import (
	"context"
	"fmt"

	"CoinBot/bot"
	"CoinBot/commands"

	"github.com/bwmarrin/discordgo"
)

func runFlip(b *bot.Bot, userID, username string, stake int64, respond commands.Responder) {
	ctx := context.Background()

	// Friendly pre-check; the debit re-validates atomically either way.
	account, err := b.Ledger.Account(ctx, userID)
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	if account.Balance < stake {
		respond(fmt.Sprintf("%s, you only have **%d** 💰. You cannot bet **%d** 💰.", username, account.Balance, stake), true)
		return
	}

	result, err := b.Games.Flip(ctx, userID, stake)
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	if result.Won {
		respond(fmt.Sprintf("🎉 %s, you won the coin flip and gained **%d** 💰! Your new balance is **%d** 💰.", username, result.Amount, result.NewBalance), false)
	} else {
		respond(fmt.Sprintf("💔 %s, you lost the coin flip and lost **%d** 💰. Your new balance is **%d** 💰.", username, result.Amount, result.NewBalance), false)
	}
}

func Flip(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `$flip <amount|all>`")
		return
	}
	stake, ok := parseStake(b, s, m, args[1])
	if !ok {
		return
	}
	runFlip(b, m.Author.ID, m.Author.Username, stake, commands.MessageResponder(b, s, m.ChannelID))
}

func FlipSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commands.InteractionUser(i)
	var stake int64
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "amount" {
			stake = opt.IntValue()
		}
	}
	runFlip(b, user.ID, user.Username, stake, commands.InteractionResponder(b, s, i))
}
