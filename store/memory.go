package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"CoinBot/economy"
)

// Memory implements economy.Store with in-process maps. It is meant for
// tests and token-only development runs: state does not survive a
// restart and is not shared across instances. Transactions run under one
// mutex; writes are staged and applied only when the callback returns
// nil, so a failed transaction leaves nothing behind.
type Memory struct {
	mu        sync.Mutex
	accounts  map[string]economy.Account
	cooldowns map[cooldownKey]time.Time
	entries   []economy.Entry
}

type cooldownKey struct {
	userID string
	action economy.Action
}

func NewMemory() *Memory {
	return &Memory{
		accounts:  make(map[string]economy.Account),
		cooldowns: make(map[cooldownKey]time.Time),
	}
}

func (m *Memory) RunTx(ctx context.Context, fn func(tx economy.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{
		m:         m,
		accounts:  make(map[string]economy.Account),
		cooldowns: make(map[cooldownKey]time.Time),
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// Entries returns a copy of the audit trail, oldest first.
func (m *Memory) Entries() []economy.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]economy.Entry(nil), m.entries...)
}

type memTx struct {
	m         *Memory
	accounts  map[string]economy.Account
	cooldowns map[cooldownKey]time.Time
	entries   []economy.Entry
}

func (t *memTx) Account(userID string) (*economy.Account, error) {
	if a, ok := t.accounts[userID]; ok {
		return copyAccount(a), nil
	}
	if a, ok := t.m.accounts[userID]; ok {
		return copyAccount(a), nil
	}
	return nil, economy.ErrNoAccount
}

func (t *memTx) PutAccount(a *economy.Account) error {
	t.accounts[a.UserID] = *copyAccount(*a)
	return nil
}

func (t *memTx) Cooldown(userID string, action economy.Action) (time.Time, bool, error) {
	key := cooldownKey{userID, action}
	if at, ok := t.cooldowns[key]; ok {
		return at, true, nil
	}
	at, ok := t.m.cooldowns[key]
	return at, ok, nil
}

func (t *memTx) PutCooldown(userID string, action economy.Action, at time.Time) error {
	t.cooldowns[cooldownKey{userID, action}] = at
	return nil
}

func (t *memTx) AppendEntry(e economy.Entry) error {
	t.entries = append(t.entries, e)
	return nil
}

func (t *memTx) TopBalances(limit int) ([]economy.Account, error) {
	if limit <= 0 {
		limit = 10
	}
	merged := make(map[string]economy.Account, len(t.m.accounts))
	for id, a := range t.m.accounts {
		merged[id] = a
	}
	for id, a := range t.accounts {
		merged[id] = a
	}
	out := make([]economy.Account, 0, len(merged))
	for _, a := range merged {
		out = append(out, *copyAccount(a))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Balance != out[j].Balance {
			return out[i].Balance > out[j].Balance
		}
		return out[i].UserID < out[j].UserID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (t *memTx) commit() {
	for id, a := range t.accounts {
		t.m.accounts[id] = a
	}
	for key, at := range t.cooldowns {
		t.m.cooldowns[key] = at
	}
	t.m.entries = append(t.m.entries, t.entries...)
}

func copyAccount(a economy.Account) *economy.Account {
	out := a
	out.Pets = append([]string(nil), a.Pets...)
	if a.LastSafeToggle != nil {
		at := *a.LastSafeToggle
		out.LastSafeToggle = &at
	}
	return &out
}
