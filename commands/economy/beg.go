package economy

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/economy"

	"github.com/bwmarrin/discordgo"
)

func runBeg(b *bot.Bot, userID, username string, respond commands.Responder) {
	ctx := context.Background()
	now := time.Now()

	if err := b.Cooldowns.Require(ctx, userID, economy.ActionBeg, now); err != nil {
		replyError(b, respond, username, err)
		return
	}

	min, max := b.Cfg.Game.MinBegReward, b.Cfg.Game.MaxBegReward
	reward := min + rand.Int63n(max-min+1)

	newBalance, err := b.Ledger.Credit(ctx, userID, reward, "beg")
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	// Only a successful credit consumes the cooldown.
	if err := b.Cooldowns.Record(ctx, userID, economy.ActionBeg, now); err != nil {
		b.Log.Warn().Err(err).Str("user_id", userID).Msg("cooldown record failed")
	}

	respond(fmt.Sprintf("🙏 %s, you begged and received **%d** 💰! Your new balance is **%d** 💰.", username, reward, newBalance), false)
}

func Beg(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	runBeg(b, m.Author.ID, m.Author.Username, commands.MessageResponder(b, s, m.ChannelID))
}

func BegSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commands.InteractionUser(i)
	runBeg(b, user.ID, user.Username, commands.InteractionResponder(b, s, i))
}
