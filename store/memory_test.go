package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"CoinBot/economy"
)

func TestMemoryRollsBackOnError(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	err := m.RunTx(ctx, func(tx economy.Tx) error {
		return tx.PutAccount(&economy.Account{UserID: "u1", Balance: 100})
	})
	if err != nil {
		t.Fatalf("RunTx: %v", err)
	}

	boom := errors.New("boom")
	err = m.RunTx(ctx, func(tx economy.Tx) error {
		if err := tx.PutAccount(&economy.Account{UserID: "u1", Balance: 999}); err != nil {
			return err
		}
		if err := tx.PutCooldown("u1", economy.ActionBeg, time.Now()); err != nil {
			return err
		}
		if err := tx.AppendEntry(economy.Entry{ID: "e1", UserID: "u1", Amount: 1}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error back, got %v", err)
	}

	err = m.RunTx(ctx, func(tx economy.Tx) error {
		a, err := tx.Account("u1")
		if err != nil {
			return err
		}
		if a.Balance != 100 {
			t.Fatalf("failed tx leaked a write: balance %d", a.Balance)
		}
		if _, found, _ := tx.Cooldown("u1", economy.ActionBeg); found {
			t.Fatal("failed tx leaked a cooldown")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunTx: %v", err)
	}
	if len(m.Entries()) != 0 {
		t.Fatal("failed tx leaked an audit entry")
	}
}

func TestMemoryReadsSeePriorWritesInTx(t *testing.T) {
	m := NewMemory()

	err := m.RunTx(context.Background(), func(tx economy.Tx) error {
		if err := tx.PutAccount(&economy.Account{UserID: "u1", Balance: 42}); err != nil {
			return err
		}
		a, err := tx.Account("u1")
		if err != nil {
			return err
		}
		if a.Balance != 42 {
			t.Fatalf("read-your-writes violated: %d", a.Balance)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunTx: %v", err)
	}
}

func TestMemoryAccountCopiesAreIsolated(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	err := m.RunTx(ctx, func(tx economy.Tx) error {
		return tx.PutAccount(&economy.Account{UserID: "u1", Balance: 10, Pets: []string{"dog"}})
	})
	if err != nil {
		t.Fatalf("RunTx: %v", err)
	}

	// Mutating a returned account must not affect the stored state
	// unless it is put back.
	err = m.RunTx(ctx, func(tx economy.Tx) error {
		a, err := tx.Account("u1")
		if err != nil {
			return err
		}
		a.Balance = 0
		a.Pets[0] = "cat"
		return nil
	})
	if err != nil {
		t.Fatalf("RunTx: %v", err)
	}

	err = m.RunTx(ctx, func(tx economy.Tx) error {
		a, err := tx.Account("u1")
		if err != nil {
			return err
		}
		if a.Balance != 10 || a.Pets[0] != "dog" {
			t.Fatalf("aliasing leak: %+v", a)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunTx: %v", err)
	}
}

func TestMemoryUnknownAccount(t *testing.T) {
	m := NewMemory()
	err := m.RunTx(context.Background(), func(tx economy.Tx) error {
		_, err := tx.Account("nobody")
		return err
	})
	if !errors.Is(err, economy.ErrNoAccount) {
		t.Fatalf("expected ErrNoAccount, got %v", err)
	}
}

func TestMemoryTopBalances(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	err := m.RunTx(ctx, func(tx economy.Tx) error {
		for _, a := range []economy.Account{
			{UserID: "a", Balance: 5},
			{UserID: "b", Balance: 50},
			{UserID: "c", Balance: 50},
			{UserID: "d", Balance: 500},
		} {
			a := a
			if err := tx.PutAccount(&a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunTx: %v", err)
	}

	err = m.RunTx(ctx, func(tx economy.Tx) error {
		top, err := tx.TopBalances(3)
		if err != nil {
			return err
		}
		if len(top) != 3 {
			t.Fatalf("expected 3, got %d", len(top))
		}
		// Ties break by user ID for a stable leaderboard.
		if top[0].UserID != "d" || top[1].UserID != "b" || top[2].UserID != "c" {
			t.Fatalf("wrong order: %s %s %s", top[0].UserID, top[1].UserID, top[2].UserID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunTx: %v", err)
	}
}
