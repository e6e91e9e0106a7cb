package economy

import (
	"context"
	"time"
)

// Cooldowns decides whether a (user, action) pair may run now and how
// long the wait is otherwise. Records live in the same store as the
// Ledger, so they survive restarts and are shared between instances.
//
// Check and Record are deliberately separate: usage is recorded only
// after the guarded action succeeded, so a rejected attempt (say an
// insufficient-funds raid) does not burn the cooldown. Two simultaneous
// requests can both pass Check before either Records; that narrow race
// is accepted.
type Cooldowns struct {
	store     Store
	durations map[Action]time.Duration
}

func NewCooldowns(s Store, durations map[Action]time.Duration) *Cooldowns {
	return &Cooldowns{store: s, durations: durations}
}

// Status is the outcome of a cooldown check.
type Status struct {
	Ready     bool
	Remaining time.Duration
}

// Check reports whether the action may run at now. Pure read; it never
// records usage. Actions with no configured duration are always ready.
func (c *Cooldowns) Check(ctx context.Context, userID string, action Action, now time.Time) (Status, error) {
	dur, ok := c.durations[action]
	if !ok {
		return Status{Ready: true}, nil
	}
	var st Status
	err := c.store.RunTx(ctx, func(tx Tx) error {
		last, found, err := tx.Cooldown(userID, action)
		if err != nil {
			return err
		}
		if !found {
			st = Status{Ready: true}
			return nil
		}
		remaining := dur - now.Sub(last)
		if remaining <= 0 {
			st = Status{Ready: true}
			return nil
		}
		st = Status{Ready: false, Remaining: remaining}
		return nil
	})
	if err != nil {
		return Status{}, wrapStorage(err)
	}
	return st, nil
}

// Require is Check folded into the error taxonomy: nil when ready,
// *CooldownError with the remaining wait otherwise.
func (c *Cooldowns) Require(ctx context.Context, userID string, action Action, now time.Time) error {
	st, err := c.Check(ctx, userID, action, now)
	if err != nil {
		return err
	}
	if !st.Ready {
		return &CooldownError{Action: action, Remaining: st.Remaining}
	}
	return nil
}

// Record stamps the last-use time for the pair. Call it only after the
// guarded action completed successfully.
func (c *Cooldowns) Record(ctx context.Context, userID string, action Action, now time.Time) error {
	err := c.store.RunTx(ctx, func(tx Tx) error {
		return tx.PutCooldown(userID, action, now)
	})
	return wrapStorage(err)
}
