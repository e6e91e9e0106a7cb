package economy

import (
	"context"
	"fmt"
	"strings"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/config"

	"github.com/bwmarrin/discordgo"
)

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func shopList() string {
	var sb strings.Builder
	sb.WriteString("🐾 **Pet Shop** 🐾\n")
	for _, pet := range config.PetCatalog {
		fmt.Fprintf(&sb, "%s **%s**: **%d** 💰\n", pet.Emoji, capitalize(pet.Name), pet.Price)
	}
	sb.WriteString("\nBuy one with `$shop buy <pet>` or `/shop buy`.")
	return sb.String()
}

func runBuy(b *bot.Bot, userID, username, petName string, respond commands.Responder) {
	pet, ok := config.PetByName(petName)
	if !ok {
		respond(fmt.Sprintf("Sorry, '%s' is not a pet we sell. Use `$shop` to see the catalog.", petName), true)
		return
	}
	result, err := b.Ledger.BuyPet(context.Background(), userID, pet.Name, pet.Price)
	if err != nil {
		replyError(b, respond, username, err)
		return
	}
	respond(fmt.Sprintf(
		"🎉 **%s**, you bought a **%s** %s for **%d** 💰! Your new balance is **%d** 💰. You now own %d pet(s).",
		username, capitalize(pet.Name), pet.Emoji, pet.Price, result.NewBalance, len(result.Pets)), false)
}

func Shop(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	respond := commands.MessageResponder(b, s, m.ChannelID)
	if len(args) >= 3 && strings.EqualFold(args[1], "buy") {
		runBuy(b, m.Author.ID, m.Author.Username, args[2], respond)
		return
	}
	respond(shopList(), false)
}

func ShopSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commands.InteractionUser(i)
	respond := commands.InteractionResponder(b, s, i)

	options := i.ApplicationCommandData().Options
	if len(options) == 0 || options[0].Name == "list" {
		respond(shopList(), false)
		return
	}
	var petName string
	for _, opt := range options[0].Options {
		if opt.Name == "pet" {
			petName = opt.StringValue()
		}
	}
	runBuy(b, user.ID, user.Username, petName, respond)
}
