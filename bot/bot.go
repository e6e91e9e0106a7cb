package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"CoinBot/config"
	"CoinBot/economy"
)

// Bot bundles the Discord session with the economy services the command
// handlers run against.
type Bot struct {
	Client    *discordgo.Session
	Store     economy.Store
	Ledger    *economy.Ledger
	Cooldowns *economy.Cooldowns
	Games     *economy.Games
	Cfg       config.App
	Log       zerolog.Logger
}

func New(cfg config.App, st economy.Store, log zerolog.Logger) (*Bot, error) {
	client, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}
	client.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	ledger := economy.NewLedger(st, cfg.Game.DefaultBalance)
	return &Bot{
		Client:    client,
		Store:     st,
		Ledger:    ledger,
		Cooldowns: economy.NewCooldowns(st, cfg.Game.CooldownDurations()),
		Games:     economy.NewGames(ledger, cfg.Game.Rules(), nil),
		Cfg:       cfg,
		Log:       log,
	}, nil
}
