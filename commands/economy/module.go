package economy

import (
	"CoinBot/commands"

	"github.com/bwmarrin/discordgo"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "Economy",
		Description: "Virtual economy: rewards, gambling, raids, safe mode and the pet shop",
		Commands: []commands.CommandInfo{
			{
				Name:        "balance",
				Aliases:     []string{"bal"},
				Description: "Check your (or another user's) coin balance",
				Usage:       "$balance [@user]",
			},
			{
				Name:        "beg",
				Description: "Beg for a small random amount of coins",
				Usage:       "$beg",
			},
			{
				Name:        "daily",
				Description: "Claim your daily coins",
				Usage:       "$daily",
			},
			{
				Name:        "flip",
				Description: "Flip a coin and double your bet or lose it",
				Usage:       "$flip <amount|all>",
			},
			{
				Name:        "roll",
				Description: "Roll a die; a 6 multiplies your bet",
				Usage:       "$roll <amount|all>",
			},
			{
				Name:        "give",
				Aliases:     []string{"pay", "transfer"},
				Description: "Give coins to another user",
				Usage:       "$give @user <amount>",
			},
			{
				Name:        "raid",
				Description: "Raid another user and steal a cut of their coins, or pay up",
				Usage:       "$raid @user",
			},
			{
				Name:        "safe",
				Aliases:     []string{"deposit", "withdraw"},
				Description: "Toggle safe mode: no raiding, no being raided",
				Usage:       "$safe on|off",
			},
			{
				Name:        "leaderboard",
				Aliases:     []string{"top", "lb"},
				Description: "Show the richest users",
				Usage:       "$leaderboard",
			},
			{
				Name:        "profile",
				Description: "Show a user's balance, safe status and pets",
				Usage:       "$profile [@user]",
			},
			{
				Name:        "shop",
				Description: "Browse the pet shop or buy a pet",
				Usage:       "$shop [buy <pet>]",
			},
			{
				Name:        "addcoins",
				Description: "Add coins to a user's balance (bot owner only)",
				Usage:       "$addcoins @user <amount>",
			},
			{
				Name:        "deductcoins",
				Description: "Deduct coins from a user's balance (bot owner only)",
				Usage:       "$deductcoins @user <amount>",
			},
		},
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        "balance",
				Description: "Check your (or another user's) coin balance",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "The user to look up",
					},
				},
				Handler: BalanceSlash,
			},
			{
				Name:        "beg",
				Description: "Beg for a small random amount of coins",
				Handler:     BegSlash,
			},
			{
				Name:        "daily",
				Description: "Claim your daily coins",
				Handler:     DailySlash,
			},
			{
				Name:        "flip",
				Description: "Flip a coin and double your bet or lose it",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "The amount of coins to bet",
						Required:    true,
						MinValue:    &one,
					},
				},
				Handler: FlipSlash,
			},
			{
				Name:        "roll",
				Description: "Roll a die; a 6 multiplies your bet",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "The amount of coins to bet",
						Required:    true,
						MinValue:    &one,
					},
				},
				Handler: RollSlash,
			},
			{
				Name:        "give",
				Description: "Give coins to another user",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "recipient",
						Description: "Who receives the coins",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "The amount of coins to give",
						Required:    true,
						MinValue:    &one,
					},
				},
				Handler: GiveSlash,
			},
			{
				Name:        "raid",
				Description: "Raid another user and steal a cut of their coins, or pay up",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "target",
						Description: "The user you want to raid",
						Required:    true,
					},
				},
				Handler: RaidSlash,
			},
			{
				Name:        "safe",
				Description: "Toggle safe mode: no raiding, no being raided",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "mode",
						Description: "on or off",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "on", Value: "on"},
							{Name: "off", Value: "off"},
						},
					},
				},
				Handler: SafeSlash,
			},
			{
				Name:        "leaderboard",
				Description: "Show the richest users",
				Handler:     LeaderboardSlash,
			},
			{
				Name:        "profile",
				Description: "Show a user's balance, safe status and pets",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "The user to look up",
					},
				},
				Handler: ProfileSlash,
			},
			{
				Name:        "shop",
				Description: "Browse the pet shop or buy a pet",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "list",
						Description: "List all pets and their prices",
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "buy",
						Description: "Buy a pet from the shop",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "pet",
								Description: "The pet to buy (e.g. dog, cat)",
								Required:    true,
							},
						},
					},
				},
				Handler: ShopSlash,
			},
			{
				Name:        "add_coins",
				Description: "Add coins to a user's balance (bot owner only)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "The user to credit",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "The amount of coins to add",
						Required:    true,
						MinValue:    &one,
					},
				},
				Handler: AddCoinsSlash,
			},
			{
				Name:        "deduct_coins",
				Description: "Deduct coins from a user's balance (bot owner only)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "The user to debit",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "The amount of coins to deduct",
						Required:    true,
						MinValue:    &one,
					},
				},
				Handler: DeductCoinsSlash,
			},
		},
	}

	commands.RegisterModule(module)

	commands.RegisterCommand("balance", Balance, "bal")
	commands.RegisterCommand("beg", Beg)
	commands.RegisterCommand("daily", Daily)
	commands.RegisterCommand("flip", Flip)
	commands.RegisterCommand("roll", Roll)
	commands.RegisterCommand("give", Give, "pay", "transfer")
	commands.RegisterCommand("raid", Raid)
	commands.RegisterCommand("safe", Safe, "deposit", "withdraw")
	commands.RegisterCommand("leaderboard", Leaderboard, "top", "lb")
	commands.RegisterCommand("profile", Profile)
	commands.RegisterCommand("shop", Shop)
	commands.RegisterCommand("addcoins", AddCoins, "add_coins")
	commands.RegisterCommand("deductcoins", DeductCoins, "deduct_coins")
}

var one float64 = 1
