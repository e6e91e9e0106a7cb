package economy

import (
	"context"
	"fmt"
	"time"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/economy"

	"github.com/bwmarrin/discordgo"
)

func runDaily(b *bot.Bot, userID, username string, respond commands.Responder) {
	ctx := context.Background()
	now := time.Now()

	if err := b.Cooldowns.Require(ctx, userID, economy.ActionDaily, now); err != nil {
		replyError(b, respond, username, err)
		return
	}

	reward := b.Cfg.Game.DailyReward
	newBalance, err := b.Ledger.Credit(ctx, userID, reward, "daily")
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	if err := b.Cooldowns.Record(ctx, userID, economy.ActionDaily, now); err != nil {
		b.Log.Warn().Err(err).Str("user_id", userID).Msg("cooldown record failed")
	}

	respond(fmt.Sprintf("🎉 %s, you claimed your daily **%d** 💰! Your new balance is **%d** 💰.", username, reward, newBalance), false)
}

func Daily(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	runDaily(b, m.Author.ID, m.Author.Username, commands.MessageResponder(b, s, m.ChannelID))
}

func DailySlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commands.InteractionUser(i)
	runDaily(b, user.ID, user.Username, commands.InteractionResponder(b, s, i))
}
