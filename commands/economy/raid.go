package economy

import (
	"context"
	"fmt"
	"time"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/economy"
	"CoinBot/utils"

	"github.com/bwmarrin/discordgo"
)

func runRaid(b *bot.Bot, raiderID, username, targetID string, respond commands.Responder) {
	ctx := context.Background()
	now := time.Now()

	if err := b.Cooldowns.Require(ctx, raiderID, economy.ActionRaid, now); err != nil {
		replyError(b, respond, username, err)
		return
	}

	result, err := b.Games.Raid(ctx, raiderID, targetID)
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	// The attempt happened, so it consumes the cooldown even when the
	// losing side had nothing worth moving.
	if err := b.Cooldowns.Record(ctx, raiderID, economy.ActionRaid, now); err != nil {
		b.Log.Warn().Err(err).Str("user_id", raiderID).Msg("cooldown record failed")
	}

	var msg string
	switch {
	case result.Amount == 0 && result.Won:
		msg = fmt.Sprintf("You successfully raided <@%s>, but they had no coins worth stealing!", targetID)
	case result.Amount == 0:
		msg = fmt.Sprintf("You failed to raid <@%s>, but you had no coins worth losing!", targetID)
	case result.Won:
		msg = fmt.Sprintf("🎉 **%s** successfully raided <@%s> and stole **%d** 💰!", username, targetID, result.Amount)
	default:
		msg = fmt.Sprintf("💔 **%s** failed to raid <@%s> and had to pay them **%d** 💰!", username, targetID, result.Amount)
	}
	msg += fmt.Sprintf("\n**%s**'s new balance: **%d** 💰.\n<@%s>'s new balance: **%d** 💰.",
		username, result.RaiderBalance, targetID, result.TargetBalance)
	respond(msg, false)
}

func Raid(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `$raid @user`")
		return
	}
	targetID, err := utils.ExtractUserID(args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid mention. Please use a proper mention (e.g. @username).")
		return
	}
	runRaid(b, m.Author.ID, m.Author.Username, targetID, commands.MessageResponder(b, s, m.ChannelID))
}

func RaidSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commands.InteractionUser(i)
	var targetID string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "target" {
			targetID = opt.UserValue(s).ID
		}
	}
	runRaid(b, user.ID, user.Username, targetID, commands.InteractionResponder(b, s, i))
}
