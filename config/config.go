package config

import (
	"time"

	"CoinBot/economy"

	"github.com/caarlos0/env/v11"
)

// App is the full startup configuration, parsed from the environment.
// A .env file loaded beforehand (godotenv in main) feeds the same
// variables during development.
type App struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	DatabaseURL  string `env:"DATABASE_URL"`
	GuildID      string `env:"GUILD_ID"`
	Prefix       string `env:"COMMAND_PREFIX" envDefault:"$"`

	// OwnerID unlocks the admin coin commands. Leaving it unset keeps
	// them disabled for everyone.
	OwnerID string `env:"BOT_OWNER_ID"`

	Log  Log
	Game Game
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Game holds the economy constants. Defaults mirror the original game
// balance; every value can be overridden per deployment.
type Game struct {
	DefaultBalance int64 `env:"DEFAULT_BALANCE" envDefault:"10000"`

	DailyReward   int64         `env:"DAILY_REWARD" envDefault:"5000"`
	DailyCooldown time.Duration `env:"DAILY_COOLDOWN" envDefault:"24h"`

	MinBegReward int64         `env:"MIN_BEG_REWARD" envDefault:"1"`
	MaxBegReward int64         `env:"MAX_BEG_REWARD" envDefault:"1000"`
	BegCooldown  time.Duration `env:"BEG_COOLDOWN" envDefault:"5m"`

	FlipWinChance float64 `env:"FLIP_WIN_CHANCE" envDefault:"0.5"`

	RollWinFace    int   `env:"ROLL_WIN_FACE" envDefault:"6"`
	RollMultiplier int64 `env:"ROLL_MULTIPLIER" envDefault:"6"`

	RaidSuccessChance float64       `env:"RAID_SUCCESS_CHANCE" envDefault:"0.5"`
	RaidMaxPercent    float64       `env:"RAID_MAX_PERCENT" envDefault:"0.25"`
	RaidMinBalance    int64         `env:"RAID_MIN_BALANCE" envDefault:"100"`
	RaidCooldown      time.Duration `env:"RAID_COOLDOWN" envDefault:"1h"`

	SafeToggleCooldown time.Duration `env:"SAFE_TOGGLE_COOLDOWN" envDefault:"24h"`
}

func Load() (App, error) {
	var cfg App
	err := env.Parse(&cfg)
	return cfg, err
}

// Rules maps the game constants onto the resolver parameters.
func (g Game) Rules() economy.Rules {
	return economy.Rules{
		FlipWinChance:     g.FlipWinChance,
		RollWinFace:       g.RollWinFace,
		RollMultiplier:    g.RollMultiplier,
		RaidSuccessChance: g.RaidSuccessChance,
		RaidMaxPercent:    g.RaidMaxPercent,
		RaidMinBalance:    g.RaidMinBalance,
	}
}

// CooldownDurations maps each gated action to its configured duration.
func (g Game) CooldownDurations() map[economy.Action]time.Duration {
	return map[economy.Action]time.Duration{
		economy.ActionBeg:        g.BegCooldown,
		economy.ActionDaily:      g.DailyCooldown,
		economy.ActionRaid:       g.RaidCooldown,
		economy.ActionSafeToggle: g.SafeToggleCooldown,
	}
}
