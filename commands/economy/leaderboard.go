package economy

import (
	"context"
	"fmt"
	"strings"

	"CoinBot/bot"
	"CoinBot/commands"

	"github.com/bwmarrin/discordgo"
)

const leaderboardSize = 10

func runLeaderboard(b *bot.Bot, respond commands.Responder) {
	accounts, err := b.Ledger.TopBalances(context.Background(), leaderboardSize)
	if err != nil {
		replyError(b, respond, "", err)
		return
	}
	if len(accounts) == 0 {
		respond("Nobody has any coins yet!", false)
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 **Coin Leaderboard** 🏆\n")
	for rank, account := range accounts {
		marker := ""
		if account.Safe {
			marker = " 🏦"
		}
		fmt.Fprintf(&sb, "%d. <@%s>: **%d** 💰%s\n", rank+1, account.UserID, account.Balance, marker)
	}
	respond(sb.String(), false)
}

func Leaderboard(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	runLeaderboard(b, commands.MessageResponder(b, s, m.ChannelID))
}

func LeaderboardSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	runLeaderboard(b, commands.InteractionResponder(b, s, i))
}
