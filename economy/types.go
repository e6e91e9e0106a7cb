package economy

import (
	"context"
	"errors"
	"time"
)

// Account is the per-user economic state. All mutation goes through the
// Ledger; nothing else writes balances, safe flags or pets.
type Account struct {
	UserID         string
	Balance        int64
	Safe           bool
	LastSafeToggle *time.Time
	Pets           []string
}

// Entry is one row of the balance audit trail. Every committed balance
// change appends an entry in the same transaction as the balance write.
type Entry struct {
	ID        string
	UserID    string
	Amount    int64
	Reason    string
	CreatedAt time.Time
}

// Action is a cooldown-gated command category.
type Action string

const (
	ActionBeg        Action = "beg"
	ActionDaily      Action = "daily"
	ActionRaid       Action = "raid"
	ActionSafeToggle Action = "safe_toggle"
)

// ErrNoAccount is returned by Tx.Account when the user has no row yet.
// The Ledger turns it into a default account; callers never see it.
var ErrNoAccount = errors.New("account not found")

// Tx is the transactional view handed to a Store callback. Reads see
// prior writes within the same transaction.
type Tx interface {
	Account(userID string) (*Account, error)
	PutAccount(a *Account) error
	Cooldown(userID string, action Action) (time.Time, bool, error)
	PutCooldown(userID string, action Action, at time.Time) error
	AppendEntry(e Entry) error
	TopBalances(limit int) ([]Account, error)
}

// Store is the persistence capability the economy core runs on. RunTx
// executes fn atomically: either every write in fn commits, or none do.
// Implementations retry a bounded number of times on write conflicts and
// return the underlying error once the budget is exhausted.
type Store interface {
	RunTx(ctx context.Context, fn func(tx Tx) error) error
}
