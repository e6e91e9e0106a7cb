package economy

import (
	"context"
	"strings"
	"testing"

	"CoinBot/bot"
	"CoinBot/config"
	"CoinBot/economy"
	"CoinBot/store"

	"github.com/rs/zerolog"
)

func newAdminBot(ownerID string) *bot.Bot {
	return &bot.Bot{
		Ledger: economy.NewLedger(store.NewMemory(), 1000),
		Cfg:    config.App{OwnerID: ownerID},
		Log:    zerolog.Nop(),
	}
}

func TestIsOwner(t *testing.T) {
	b := newAdminBot("42")
	if !isOwner(b, "42") {
		t.Fatal("configured owner must pass the gate")
	}
	if isOwner(b, "999") {
		t.Fatal("non-owner must not pass the gate")
	}
	if isOwner(newAdminBot(""), "42") {
		t.Fatal("unset owner ID must disable the gate for everyone")
	}
}

func TestAddCoinsRequiresOwner(t *testing.T) {
	b := newAdminBot("42")
	var got string
	respond := func(content string, _ bool) { got = content }

	runAddCoins(b, "999", "intruder", "target", 500, respond)
	if !strings.Contains(got, "bot owner") {
		t.Fatalf("expected owner rejection, got %q", got)
	}
	a, err := b.Ledger.Account(context.Background(), "target")
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if a.Balance != 1000 {
		t.Fatalf("rejected command mutated balance: %d", a.Balance)
	}
}

func TestAddCoinsCreditsTarget(t *testing.T) {
	b := newAdminBot("42")
	var got string
	respond := func(content string, _ bool) { got = content }

	runAddCoins(b, "42", "owner", "target", 500, respond)
	if !strings.Contains(got, "Added **500**") {
		t.Fatalf("unexpected reply: %q", got)
	}
	a, err := b.Ledger.Account(context.Background(), "target")
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if a.Balance != 1500 {
		t.Fatalf("expected 1500, got %d", a.Balance)
	}
}

func TestDeductCoinsDebitsTarget(t *testing.T) {
	b := newAdminBot("42")
	var got string
	respond := func(content string, _ bool) { got = content }

	runDeductCoins(b, "42", "owner", "target", 400, respond)
	if !strings.Contains(got, "Deducted **400**") {
		t.Fatalf("unexpected reply: %q", got)
	}
	a, err := b.Ledger.Account(context.Background(), "target")
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if a.Balance != 600 {
		t.Fatalf("expected 600, got %d", a.Balance)
	}

	// Deducting past zero fails and leaves the balance alone.
	runDeductCoins(b, "42", "owner", "target", 700, respond)
	if !strings.Contains(got, "only have") {
		t.Fatalf("expected insufficient-funds reply, got %q", got)
	}
	a, _ = b.Ledger.Account(context.Background(), "target")
	if a.Balance != 600 {
		t.Fatalf("failed deduct mutated balance: %d", a.Balance)
	}
}
