package commands

import (
	"CoinBot/bot"

	"github.com/bwmarrin/discordgo"
)

// CommandFunc defines the signature for prefix command handlers
type CommandFunc func(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string)

// CommandInfo holds detailed information about a command
type CommandInfo struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string
}

// SlashCommandInfo holds information about slash commands
type SlashCommandInfo struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
	Handler     func(*bot.Bot, *discordgo.Session, *discordgo.InteractionCreate)
}

// ModuleInfo represents a command module with its commands and metadata
type ModuleInfo struct {
	Name          string
	Description   string
	Commands      []CommandInfo
	SlashCommands []SlashCommandInfo
}

// Global registries
var (
	RegisteredModules    = make(map[string]*ModuleInfo)
	CommandDetails       = make(map[string]CommandInfo)
	SlashCommandHandlers = make(map[string]func(*bot.Bot, *discordgo.Session, *discordgo.InteractionCreate))
	CommandMap           = make(map[string]CommandFunc)
	CommandAliases       = make(map[string]string)
)

// RegisterCommand registers an individual prefix command handler
func RegisterCommand(name string, handler CommandFunc, aliases ...string) {
	CommandMap[name] = handler
	for _, alias := range aliases {
		CommandAliases[alias] = name
	}
}

// RegisterModule registers a complete module and compiles its command info
func RegisterModule(module *ModuleInfo) {
	RegisteredModules[module.Name] = module

	for _, cmd := range module.Commands {
		CommandDetails[cmd.Name] = cmd
	}
	for _, slashCmd := range module.SlashCommands {
		SlashCommandHandlers[slashCmd.Name] = slashCmd.Handler
	}
}

// GetAllSlashCommands returns all registered slash commands for registration
func GetAllSlashCommands() []*discordgo.ApplicationCommand {
	var cmds []*discordgo.ApplicationCommand
	for _, module := range RegisteredModules {
		for _, slashCmd := range module.SlashCommands {
			cmds = append(cmds, &discordgo.ApplicationCommand{
				Name:        slashCmd.Name,
				Description: slashCmd.Description,
				Options:     slashCmd.Options,
			})
		}
	}
	return cmds
}
