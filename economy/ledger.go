package economy

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Ledger is the sole authority over Account state. Every mutation runs
// as one store transaction: read the fresh row, re-check the invariant
// against it, write. Two concurrent debits on the same account serialize
// at the store, so a committed balance is never negative.
type Ledger struct {
	store          Store
	defaultBalance int64
}

func NewLedger(s Store, defaultBalance int64) *Ledger {
	return &Ledger{store: s, defaultBalance: defaultBalance}
}

// TransferResult carries both post-commit balances of a transfer.
type TransferResult struct {
	FromBalance int64
	ToBalance   int64
}

// PurchaseResult carries the state after a successful pet purchase.
type PurchaseResult struct {
	NewBalance int64
	Pets       []string
}

// Account returns the user's current state, creating and persisting a
// default account first if none exists.
func (l *Ledger) Account(ctx context.Context, userID string) (Account, error) {
	var out Account
	err := l.store.RunTx(ctx, func(tx Tx) error {
		a, err := l.fetch(tx, userID)
		if err != nil {
			return err
		}
		out = *a
		return nil
	})
	return out, wrapStorage(err)
}

// Credit atomically adds amount to the user's balance.
func (l *Ledger) Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	var newBal int64
	err := l.store.RunTx(ctx, func(tx Tx) error {
		a, err := l.fetch(tx, userID)
		if err != nil {
			return err
		}
		a.Balance += amount
		if err := tx.PutAccount(a); err != nil {
			return err
		}
		newBal = a.Balance
		return tx.AppendEntry(newEntry(userID, amount, reason))
	})
	return newBal, wrapStorage(err)
}

// Debit atomically subtracts amount from the user's balance. The balance
// is re-validated against the freshly read row inside the transaction;
// going to exactly zero is allowed, below zero is not.
func (l *Ledger) Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	var newBal int64
	err := l.store.RunTx(ctx, func(tx Tx) error {
		a, err := l.fetch(tx, userID)
		if err != nil {
			return err
		}
		if a.Balance-amount < 0 {
			return &InsufficientFundsError{Needed: amount, Available: a.Balance}
		}
		a.Balance -= amount
		if err := tx.PutAccount(a); err != nil {
			return err
		}
		newBal = a.Balance
		return tx.AppendEntry(newEntry(userID, -amount, reason))
	})
	return newBal, wrapStorage(err)
}

// Transfer atomically moves amount from one account to another. Either
// both sides move or neither does; no concurrent reader can observe a
// half-done transfer.
func (l *Ledger) Transfer(ctx context.Context, fromID, toID string, amount int64, reason string) (TransferResult, error) {
	if amount <= 0 {
		return TransferResult{}, ErrInvalidAmount
	}
	if fromID == toID {
		return TransferResult{}, ErrSelfTransfer
	}
	var out TransferResult
	err := l.store.RunTx(ctx, func(tx Tx) error {
		// Lock rows in a fixed order so two opposite transfers
		// cannot deadlock each other.
		accounts := make(map[string]*Account, 2)
		for _, id := range sortedPair(fromID, toID) {
			a, err := l.fetch(tx, id)
			if err != nil {
				return err
			}
			accounts[id] = a
		}
		from, to := accounts[fromID], accounts[toID]
		if from.Balance-amount < 0 {
			return &InsufficientFundsError{Needed: amount, Available: from.Balance}
		}
		from.Balance -= amount
		to.Balance += amount
		if err := tx.PutAccount(from); err != nil {
			return err
		}
		if err := tx.PutAccount(to); err != nil {
			return err
		}
		if err := tx.AppendEntry(newEntry(fromID, -amount, reason)); err != nil {
			return err
		}
		if err := tx.AppendEntry(newEntry(toID, amount, reason)); err != nil {
			return err
		}
		out = TransferResult{FromBalance: from.Balance, ToBalance: to.Balance}
		return nil
	})
	return out, wrapStorage(err)
}

// SetSafeMode flips the account's safe flag. Enabling stamps
// LastSafeToggle in the same write. Setting the flag to the value it
// already holds fails with ErrAlreadyInState and writes nothing.
func (l *Ledger) SetSafeMode(ctx context.Context, userID string, enabled bool) (bool, error) {
	err := l.store.RunTx(ctx, func(tx Tx) error {
		a, err := l.fetch(tx, userID)
		if err != nil {
			return err
		}
		if a.Safe == enabled {
			return ErrAlreadyInState
		}
		a.Safe = enabled
		if enabled {
			now := time.Now().UTC()
			a.LastSafeToggle = &now
		}
		return tx.PutAccount(a)
	})
	return enabled, wrapStorage(err)
}

// BuyPet debits price and appends petID to the user's pets in a single
// transaction. A failed debit leaves the pet list untouched.
func (l *Ledger) BuyPet(ctx context.Context, userID, petID string, price int64) (PurchaseResult, error) {
	if price <= 0 {
		return PurchaseResult{}, ErrInvalidAmount
	}
	var out PurchaseResult
	err := l.store.RunTx(ctx, func(tx Tx) error {
		a, err := l.fetch(tx, userID)
		if err != nil {
			return err
		}
		if a.Balance-price < 0 {
			return &InsufficientFundsError{Needed: price, Available: a.Balance}
		}
		a.Balance -= price
		a.Pets = append(a.Pets, petID)
		if err := tx.PutAccount(a); err != nil {
			return err
		}
		if err := tx.AppendEntry(newEntry(userID, -price, "shop:"+petID)); err != nil {
			return err
		}
		out = PurchaseResult{NewBalance: a.Balance, Pets: append([]string(nil), a.Pets...)}
		return nil
	})
	return out, wrapStorage(err)
}

// TopBalances returns up to limit accounts ordered by balance, richest
// first.
func (l *Ledger) TopBalances(ctx context.Context, limit int) ([]Account, error) {
	var out []Account
	err := l.store.RunTx(ctx, func(tx Tx) error {
		accounts, err := tx.TopBalances(limit)
		if err != nil {
			return err
		}
		out = accounts
		return nil
	})
	return out, wrapStorage(err)
}

// fetch reads the account inside tx, creating the default row on first
// reference. Creation persists immediately so two racing first reads
// settle on one initialization.
func (l *Ledger) fetch(tx Tx, userID string) (*Account, error) {
	a, err := tx.Account(userID)
	if errors.Is(err, ErrNoAccount) {
		a = &Account{UserID: userID, Balance: l.defaultBalance}
		if err := tx.PutAccount(a); err != nil {
			return nil, err
		}
		return a, nil
	}
	return a, err
}

func sortedPair(a, b string) []string {
	ids := []string{a, b}
	sort.Strings(ids)
	return ids
}

var (
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	entropyMu sync.Mutex
)

func newEntry(userID string, amount int64, reason string) Entry {
	entropyMu.Lock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	entropyMu.Unlock()
	return Entry{
		ID:        id,
		UserID:    userID,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
}
