package economy

import (
	"context"
	"fmt"
	"strings"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/config"
	"CoinBot/utils"

	"github.com/bwmarrin/discordgo"
)

func runProfile(b *bot.Bot, targetID string, respond commands.Responder) {
	account, err := b.Ledger.Account(context.Background(), targetID)
	if err != nil {
		replyError(b, respond, targetID, err)
		return
	}

	safeStatus := "⚔️ raidable"
	if account.Safe {
		safeStatus = "🏦 safe mode"
	}

	pets := "none"
	if len(account.Pets) > 0 {
		var parts []string
		for _, name := range account.Pets {
			if pet, ok := config.PetByName(name); ok {
				parts = append(parts, pet.Emoji+" "+name)
			} else {
				parts = append(parts, name)
			}
		}
		pets = strings.Join(parts, ", ")
	}

	respond(fmt.Sprintf(
		"📋 **Profile** of <@%s>\nBalance: **%d** 💰\nStatus: %s\nPets (%d): %s",
		targetID, account.Balance, safeStatus, len(account.Pets), pets), false)
}

func Profile(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	targetID := m.Author.ID
	if len(args) >= 2 {
		id, err := utils.ExtractUserID(args[1])
		if err != nil {
			s.ChannelMessageSend(m.ChannelID, "Invalid mention. Please use a proper mention (e.g. @username).")
			return
		}
		targetID = id
	}
	runProfile(b, targetID, commands.MessageResponder(b, s, m.ChannelID))
}

func ProfileSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	targetID := commands.InteractionUserID(i)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			targetID = opt.UserValue(s).ID
		}
	}
	runProfile(b, targetID, commands.InteractionResponder(b, s, i))
}
