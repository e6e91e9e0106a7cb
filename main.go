package main

import (
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/config"
	"CoinBot/economy"
	"CoinBot/store"

	// Command modules register themselves on import.
	_ "CoinBot/commands/economy"
	_ "CoinBot/commands/general"
)

func newLogger(cfg config.Log) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
		level = parsed
	}
	var output io.Writer = os.Stdout
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("config load failed")
	}
	log := newLogger(cfg.Log)

	var st economy.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres init failed")
		}
		defer pg.Close()
		st = pg
	} else {
		log.Warn().Msg("DATABASE_URL not set; using in-memory store (state lost on restart)")
		st = store.NewMemory()
	}

	b, err := bot.New(cfg, st, log)
	if err != nil {
		log.Fatal().Err(err).Msg("bot init failed")
	}

	b.Client.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		commands.HandleMessage(b, s, m)
	})
	b.Client.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		commands.HandleInteraction(b, s, i)
	})

	if err := b.Client.Open(); err != nil {
		log.Fatal().Err(err).Msg("discord connection failed")
	}
	defer b.Client.Close()

	commands.RegisterAllSlashCommands(b.Client, cfg.GuildID, log)
	log.Info().Str("user", b.Client.State.User.Username).Msg("bot is running; press Ctrl+C to exit")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")
}
