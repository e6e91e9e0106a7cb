package general

import (
	"CoinBot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "General",
		Description: "Basic utility commands",
		Commands: []commands.CommandInfo{
			{
				Name:        "ping",
				Description: "Check that the bot is alive",
				Usage:       "$ping",
			},
			{
				Name:        "help",
				Aliases:     []string{"commands"},
				Description: "List all commands",
				Usage:       "$help",
			},
		},
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        "ping",
				Description: "Check that the bot is alive",
				Handler:     PingSlash,
			},
			{
				Name:        "help",
				Description: "List all commands",
				Handler:     HelpSlash,
			},
		},
	}

	commands.RegisterModule(module)

	commands.RegisterCommand("ping", Ping)
	commands.RegisterCommand("help", Help, "commands")
}
