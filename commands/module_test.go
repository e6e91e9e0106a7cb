package commands

import (
	"testing"

	"CoinBot/bot"

	"github.com/bwmarrin/discordgo"
)

func TestRegisterModuleCompilesRegistries(t *testing.T) {
	module := &ModuleInfo{
		Name:        "Test",
		Description: "test module",
		Commands: []CommandInfo{
			{Name: "foo", Aliases: []string{"f"}, Description: "does foo", Usage: "$foo"},
		},
		SlashCommands: []SlashCommandInfo{
			{
				Name:        "foo",
				Description: "does foo",
				Handler:     func(*bot.Bot, *discordgo.Session, *discordgo.InteractionCreate) {},
			},
		},
	}
	RegisterModule(module)
	RegisterCommand("foo", func(*bot.Bot, *discordgo.Session, *discordgo.MessageCreate, []string) {}, "f")

	if _, ok := CommandDetails["foo"]; !ok {
		t.Fatal("command details not compiled")
	}
	if _, ok := SlashCommandHandlers["foo"]; !ok {
		t.Fatal("slash handler not compiled")
	}
	if CommandAliases["f"] != "foo" {
		t.Fatalf("alias not registered: %q", CommandAliases["f"])
	}
	if _, ok := CommandMap["foo"]; !ok {
		t.Fatal("prefix handler not registered")
	}

	var found bool
	for _, cmd := range GetAllSlashCommands() {
		if cmd.Name == "foo" {
			found = true
		}
	}
	if !found {
		t.Fatal("slash command missing from registration list")
	}
}

func TestCommandNeedsUpdate(t *testing.T) {
	base := &discordgo.ApplicationCommand{
		Name:        "foo",
		Description: "does foo",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "n", Required: true},
		},
	}
	same := &discordgo.ApplicationCommand{
		Name:        "foo",
		Description: "does foo",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "n", Required: true},
		},
	}
	if commandNeedsUpdate(base, same) {
		t.Fatal("identical commands flagged for update")
	}

	changed := &discordgo.ApplicationCommand{Name: "foo", Description: "does bar"}
	if !commandNeedsUpdate(base, changed) {
		t.Fatal("changed description not detected")
	}
}
