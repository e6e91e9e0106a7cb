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

// isOwner gates the admin coin commands to the configured bot owner.
// An unset BOT_OWNER_ID disables them for everyone.
func isOwner(b *bot.Bot, userID string) bool {
	return b.Cfg.OwnerID != "" && userID == b.Cfg.OwnerID
}

func runAddCoins(b *bot.Bot, callerID, username, targetID string, amount int64, respond commands.Responder) {
	if !isOwner(b, callerID) {
		respond("Only the bot owner can use this command.", true)
		return
	}
	newBalance, err := b.Ledger.Credit(context.Background(), targetID, amount, "admin:add")
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	respond(fmt.Sprintf("✅ Added **%d** 💰 to <@%s>. Their new balance is **%d** 💰.", amount, targetID, newBalance), false)
}

func runDeductCoins(b *bot.Bot, callerID, username, targetID string, amount int64, respond commands.Responder) {
	if !isOwner(b, callerID) {
		respond("Only the bot owner can use this command.", true)
		return
	}
	newBalance, err := b.Ledger.Debit(context.Background(), targetID, amount, "admin:deduct")
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	respond(fmt.Sprintf("✅ Deducted **%d** 💰 from <@%s>. Their new balance is **%d** 💰.", amount, targetID, newBalance), false)
}

func parseAdminArgs(s *discordgo.Session, m *discordgo.MessageCreate, args []string, usage string) (string, int64, bool) {
	if len(args) < 3 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `"+usage+"`")
		return "", 0, false
	}
	targetID, err := utils.ExtractUserID(args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid mention. Please use a proper mention (e.g. @username).")
		return "", 0, false
	}
	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil || amount <= 0 {
		s.ChannelMessageSend(m.ChannelID, "Amount must be a positive number.")
		return "", 0, false
	}
	return targetID, amount, true
}

func AddCoins(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	targetID, amount, ok := parseAdminArgs(s, m, args, "$addcoins @user <amount>")
	if !ok {
		return
	}
	runAddCoins(b, m.Author.ID, m.Author.Username, targetID, amount, commands.MessageResponder(b, s, m.ChannelID))
}

func DeductCoins(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	targetID, amount, ok := parseAdminArgs(s, m, args, "$deductcoins @user <amount>")
	if !ok {
		return
	}
	runDeductCoins(b, m.Author.ID, m.Author.Username, targetID, amount, commands.MessageResponder(b, s, m.ChannelID))
}

func adminSlashArgs(s *discordgo.Session, i *discordgo.InteractionCreate) (string, int64) {
	var (
		targetID string
		amount   int64
	)
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "user":
			targetID = opt.UserValue(s).ID
		case "amount":
			amount = opt.IntValue()
		}
	}
	return targetID, amount
}

func AddCoinsSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commands.InteractionUser(i)
	targetID, amount := adminSlashArgs(s, i)
	runAddCoins(b, user.ID, user.Username, targetID, amount, commands.InteractionResponder(b, s, i))
}

func DeductCoinsSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commands.InteractionUser(i)
	targetID, amount := adminSlashArgs(s, i)
	runDeductCoins(b, user.ID, user.Username, targetID, amount, commands.InteractionResponder(b, s, i))
}
