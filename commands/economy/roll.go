package economy

import (
	"context"
	"fmt"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/utils"

	"github.com/bwmarrin/discordgo"
)

// parseStake resolves an amount argument for the gambling commands,
// reading the live balance so "all" means everything.
func parseStake(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, arg string) (int64, bool) {
	account, err := b.Ledger.Account(context.Background(), m.Author.ID)
	if err != nil {
		replyError(b, commands.MessageResponder(b, s, m.ChannelID), m.Author.Username, err)
		return 0, false
	}
	stake, err := utils.ParseAmount(arg, account.Balance)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Amount must be a positive number or `all`.")
		return 0, false
	}
	if stake == 0 {
		s.ChannelMessageSend(m.ChannelID, "You have no coins to bet.")
		return 0, false
	}
	return stake, true
}

func runRoll(b *bot.Bot, userID, username string, stake int64, respond commands.Responder) {
	ctx := context.Background()

	account, err := b.Ledger.Account(ctx, userID)
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	if account.Balance < stake {
		respond(fmt.Sprintf("%s, you only have **%d** 💰. You cannot bet **%d** 💰.", username, account.Balance, stake), true)
		return
	}

	result, err := b.Games.Roll(ctx, userID, stake)
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	if result.Won {
		respond(fmt.Sprintf("🎲 %s, you rolled a **%d** and won **%d** 💰! Your new balance is **%d** 💰.", username, result.Face, result.Amount, result.NewBalance), false)
	} else {
		respond(fmt.Sprintf("🎲 %s, you rolled a **%d** and lost **%d** 💰. Your new balance is **%d** 💰.", username, result.Face, result.Amount, result.NewBalance), false)
	}
}

func Roll(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `$roll <amount|all>`")
		return
	}
	stake, ok := parseStake(b, s, m, args[1])
	if !ok {
		return
	}
	runRoll(b, m.Author.ID, m.Author.Username, stake, commands.MessageResponder(b, s, m.ChannelID))
}

func RollSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commands.InteractionUser(i)
	var stake int64
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "amount" {
			stake = opt.IntValue()
		}
	}
	runRoll(b, user.ID, user.Username, stake, commands.InteractionResponder(b, s, i))
}
