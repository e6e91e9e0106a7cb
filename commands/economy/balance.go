package economy

import (
	"context"
	"fmt"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/utils"

	"github.com/bwmarrin/discordgo"
)

func runBalance(b *bot.Bot, targetID string, respond commands.Responder) {
	account, err := b.Ledger.Account(context.Background(), targetID)
	if err != nil {
		replyError(b, respond, targetID, err)
		return
	}
	respond(fmt.Sprintf("<@%s>'s balance: **%d** 💰", targetID, account.Balance), false)
}

func Balance(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	targetID := m.Author.ID
	if len(args) >= 2 {
		id, err := utils.ExtractUserID(args[1])
		if err != nil {
			s.ChannelMessageSend(m.ChannelID, "Invalid mention. Please use a proper mention (e.g. @username).")
			return
		}
		targetID = id
	}
	runBalance(b, targetID, commands.MessageResponder(b, s, m.ChannelID))
}

func BalanceSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	targetID := commands.InteractionUserID(i)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			targetID = opt.UserValue(s).ID
		}
	}
	runBalance(b, targetID, commands.InteractionResponder(b, s, i))
}
