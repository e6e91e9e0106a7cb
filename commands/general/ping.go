package general

import (
	"fmt"

	"CoinBot/bot"
	"CoinBot/commands"

	"github.com/bwmarrin/discordgo"
)

func runPing(b *bot.Bot, respond commands.Responder) {
	respond(fmt.Sprintf("🏓 Pong! Heartbeat latency: %dms", b.Client.HeartbeatLatency().Milliseconds()), false)
}

func Ping(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	runPing(b, commands.MessageResponder(b, s, m.ChannelID))
}

func PingSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	runPing(b, commands.InteractionResponder(b, s, i))
}
