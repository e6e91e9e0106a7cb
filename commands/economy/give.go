package economy

import (
	"context"
	"fmt"
	"strconv"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/utils"

	"github.com/bwmarrin/discordgo"
)

func runGive(b *bot.Bot, fromID, username, toID string, amount int64, respond commands.Responder) {
	result, err := b.Ledger.Transfer(context.Background(), fromID, toID, amount, "give")
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	respond(fmt.Sprintf(
		"💸 %s gave **%d** 💰 to <@%s>!\nYour new balance: **%d** 💰. Their new balance: **%d** 💰.",
		username, amount, toID, result.FromBalance, result.ToBalance), false)
}

func Give(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 3 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `$give @user <amount>`")
		return
	}
	toID, err := utils.ExtractUserID(args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid mention. Please use a proper mention (e.g. @username).")
		return
	}
	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil || amount <= 0 {
		s.ChannelMessageSend(m.ChannelID, "Amount must be a positive number.")
		return
	}
	runGive(b, m.Author.ID, m.Author.Username, toID, amount, commands.MessageResponder(b, s, m.ChannelID))
}

func GiveSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commands.InteractionUser(i)
	var (
		toID   string
		amount int64
	)
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "recipient":
			toID = opt.UserValue(s).ID
		case "amount":
			amount = opt.IntValue()
		}
	}
	runGive(b, user.ID, user.Username, toID, amount, commands.InteractionResponder(b, s, i))
}
