package economy

import (
	"errors"
	"fmt"

	"CoinBot/bot"
	"CoinBot/commands"
	"CoinBot/economy"
	"CoinBot/utils"
)

// replyError translates the economy error taxonomy into user-facing
// text. Storage failures get a generic apology and a log line; every
// other kind is an expected outcome the user can act on.
func replyError(b *bot.Bot, respond commands.Responder, username string, err error) {
	var (
		funds    *economy.InsufficientFundsError
		cooldown *economy.CooldownError
		storage  *economy.StorageError
	)
	switch {
	case errors.As(err, &funds):
		respond(fmt.Sprintf("%s, you only have **%d** 💰 but this needs **%d** 💰.", username, funds.Available, funds.Needed), true)
	case errors.As(err, &cooldown):
		respond(fmt.Sprintf("%s, you can do that again in %s.", username, utils.FormatDuration(cooldown.Remaining)), true)
	case errors.Is(err, economy.ErrInvalidAmount):
		respond("Amount must be a positive number.", true)
	case errors.Is(err, economy.ErrSelfTransfer):
		respond("You cannot give coins to yourself!", true)
	case errors.Is(err, economy.ErrSelfRaid):
		respond("You cannot raid yourself!", true)
	case errors.Is(err, economy.ErrSafeModeActive):
		respond(fmt.Sprintf("%s, you cannot raid while in safe mode! Use `$safe off` first.", username), true)
	case errors.Is(err, economy.ErrTargetSafe):
		respond("That user is in safe mode. You cannot raid them!", true)
	case errors.Is(err, economy.ErrBalanceTooLow):
		respond(fmt.Sprintf("Both you and your target need at least %d 💰 to raid.", b.Cfg.Game.RaidMinBalance), true)
	case errors.Is(err, economy.ErrAlreadyInState):
		respond(fmt.Sprintf("%s, safe mode is already set that way.", username), true)
	case errors.As(err, &storage):
		b.Log.Error().Err(err).Msg("storage failure")
		respond("Sorry, something went wrong. Please try again later.", true)
	default:
		b.Log.Error().Err(err).Msg("unexpected command error")
		respond("Sorry, something went wrong. Please try again later.", true)
	}
}
