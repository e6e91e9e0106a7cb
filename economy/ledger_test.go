package economy_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"CoinBot/economy"
	"CoinBot/store"
)

const defaultBalance = 10000

func newLedger() *economy.Ledger {
	return economy.NewLedger(store.NewMemory(), defaultBalance)
}

func TestAccountCreatesDefault(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	a, err := l.Account(ctx, "u1")
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if a.Balance != defaultBalance {
		t.Fatalf("expected default balance %d, got %d", defaultBalance, a.Balance)
	}
	if a.Safe || len(a.Pets) != 0 {
		t.Fatalf("expected fresh account, got %+v", a)
	}

	// A second read must not re-initialize.
	again, err := l.Account(ctx, "u1")
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if again.Balance != a.Balance {
		t.Fatalf("account re-initialized: %d vs %d", again.Balance, a.Balance)
	}
}

func TestCreditAndDebit(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	bal, err := l.Credit(ctx, "u1", 500, "test")
	if err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if bal != defaultBalance+500 {
		t.Fatalf("expected %d, got %d", defaultBalance+500, bal)
	}

	bal, err = l.Debit(ctx, "u1", 10500, "test")
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if bal != 0 {
		t.Fatalf("debit to exactly zero must be allowed, got %d", bal)
	}
}

func TestDebitInsufficientFunds(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	_, err := l.Debit(ctx, "u1", 15000, "test")
	var funds *economy.InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}
	if funds.Needed != 15000 || funds.Available != defaultBalance {
		t.Fatalf("wrong shortfall context: %+v", funds)
	}

	a, err := l.Account(ctx, "u1")
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if a.Balance != defaultBalance {
		t.Fatalf("failed debit mutated balance: %d", a.Balance)
	}
}

func TestInvalidAmounts(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	for _, amount := range []int64{0, -1, -100} {
		if _, err := l.Credit(ctx, "u1", amount, "test"); !errors.Is(err, economy.ErrInvalidAmount) {
			t.Fatalf("Credit(%d): expected ErrInvalidAmount, got %v", amount, err)
		}
		if _, err := l.Debit(ctx, "u1", amount, "test"); !errors.Is(err, economy.ErrInvalidAmount) {
			t.Fatalf("Debit(%d): expected ErrInvalidAmount, got %v", amount, err)
		}
		if _, err := l.Transfer(ctx, "u1", "u2", amount, "test"); !errors.Is(err, economy.ErrInvalidAmount) {
			t.Fatalf("Transfer(%d): expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestTransfer(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	result, err := l.Transfer(ctx, "u1", "u2", 2500, "test")
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if result.FromBalance != 7500 || result.ToBalance != 12500 {
		t.Fatalf("expected 7500/12500, got %d/%d", result.FromBalance, result.ToBalance)
	}

	// Conservation: total coins unchanged.
	a1, _ := l.Account(ctx, "u1")
	a2, _ := l.Account(ctx, "u2")
	if a1.Balance+a2.Balance != 2*defaultBalance {
		t.Fatalf("coins not conserved: %d + %d", a1.Balance, a2.Balance)
	}
}

func TestTransferSelf(t *testing.T) {
	l := newLedger()
	if _, err := l.Transfer(context.Background(), "u1", "u1", 100, "test"); !errors.Is(err, economy.ErrSelfTransfer) {
		t.Fatalf("expected ErrSelfTransfer, got %v", err)
	}
}

func TestTransferInsufficientLeavesBothUntouched(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	_, err := l.Transfer(ctx, "u1", "u2", defaultBalance+1, "test")
	var funds *economy.InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}
	a1, _ := l.Account(ctx, "u1")
	a2, _ := l.Account(ctx, "u2")
	if a1.Balance != defaultBalance || a2.Balance != defaultBalance {
		t.Fatalf("failed transfer mutated balances: %d/%d", a1.Balance, a2.Balance)
	}
}

func TestBuyPet(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	result, err := l.BuyPet(ctx, "u1", "dog", 5000)
	if err != nil {
		t.Fatalf("BuyPet: %v", err)
	}
	if result.NewBalance != 5000 {
		t.Fatalf("expected balance 5000, got %d", result.NewBalance)
	}
	if len(result.Pets) != 1 || result.Pets[0] != "dog" {
		t.Fatalf("expected pets [dog], got %v", result.Pets)
	}

	// Second purchase exceeds the remaining balance: nothing changes.
	_, err = l.BuyPet(ctx, "u1", "cat", 6000)
	var funds *economy.InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}
	a, _ := l.Account(ctx, "u1")
	if a.Balance != 5000 {
		t.Fatalf("failed purchase mutated balance: %d", a.Balance)
	}
	if len(a.Pets) != 1 {
		t.Fatalf("failed purchase mutated pets: %v", a.Pets)
	}
}

func TestSetSafeMode(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	enabled, err := l.SetSafeMode(ctx, "u1", true)
	if err != nil {
		t.Fatalf("SetSafeMode: %v", err)
	}
	if !enabled {
		t.Fatal("expected enabled=true")
	}
	a, _ := l.Account(ctx, "u1")
	if !a.Safe {
		t.Fatal("safe flag not set")
	}
	if a.LastSafeToggle == nil {
		t.Fatal("LastSafeToggle not stamped on enable")
	}

	if _, err := l.SetSafeMode(ctx, "u1", true); !errors.Is(err, economy.ErrAlreadyInState) {
		t.Fatalf("expected ErrAlreadyInState, got %v", err)
	}

	if _, err := l.SetSafeMode(ctx, "u1", false); err != nil {
		t.Fatalf("SetSafeMode off: %v", err)
	}
	a, _ = l.Account(ctx, "u1")
	if a.Safe {
		t.Fatal("safe flag not cleared")
	}
}

func TestConcurrentDebitsNeverGoNegative(t *testing.T) {
	m := store.NewMemory()
	l := economy.NewLedger(m, 1000)
	ctx := context.Background()

	if _, err := l.Account(ctx, "u1"); err != nil {
		t.Fatalf("Account: %v", err)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for g := 0; g < 20; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Debit(ctx, "u1", 100, "race"); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 10 {
		t.Fatalf("expected exactly 10 debits to succeed, got %d", succeeded)
	}
	a, _ := l.Account(ctx, "u1")
	if a.Balance != 0 {
		t.Fatalf("expected balance 0, got %d", a.Balance)
	}
}

func TestTopBalances(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	l.Credit(ctx, "rich", 90000, "test")
	l.Account(ctx, "middle")
	l.Debit(ctx, "poor", 9000, "test")

	top, err := l.TopBalances(ctx, 2)
	if err != nil {
		t.Fatalf("TopBalances: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(top))
	}
	if top[0].UserID != "rich" || top[1].UserID != "middle" {
		t.Fatalf("wrong order: %s, %s", top[0].UserID, top[1].UserID)
	}
}

func TestAuditEntriesWrittenAtomically(t *testing.T) {
	m := store.NewMemory()
	l := economy.NewLedger(m, defaultBalance)
	ctx := context.Background()

	if _, err := l.Transfer(ctx, "u1", "u2", 2500, "give"); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(entries))
	}
	if entries[0].Amount+entries[1].Amount != 0 {
		t.Fatalf("transfer entries must sum to zero: %+v", entries)
	}

	// A failed debit writes no entry.
	before := len(m.Entries())
	if _, err := l.Debit(ctx, "u2", 1e9, "test"); err == nil {
		t.Fatal("expected debit to fail")
	}
	if len(m.Entries()) != before {
		t.Fatal("failed debit wrote an audit entry")
	}
}
