package general

import (
	"fmt"
	"sort"
	"strings"

	"CoinBot/bot"
	"CoinBot/commands"

	"github.com/bwmarrin/discordgo"
)

func runHelp(b *bot.Bot, respond commands.Responder) {
	names := make([]string, 0, len(commands.CommandDetails))
	for name := range commands.CommandDetails {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("**Available commands**\n")
	for _, name := range names {
		info := commands.CommandDetails[name]
		fmt.Fprintf(&sb, "`%s` - %s", info.Usage, info.Description)
		if len(info.Aliases) > 0 {
			fmt.Fprintf(&sb, " (aliases: %s)", strings.Join(info.Aliases, ", "))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nEvery command is also available as a slash command.")
	respond(sb.String(), true)
}

func Help(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	runHelp(b, commands.MessageResponder(b, s, m.ChannelID))
}

func HelpSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	runHelp(b, commands.InteractionResponder(b, s, i))
}
