package economy

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Rules holds the tunable game parameters. Probabilities are in [0,1].
type Rules struct {
	FlipWinChance     float64
	RollWinFace       int
	RollMultiplier    int64
	RaidSuccessChance float64
	RaidMaxPercent    float64
	RaidMinBalance    int64
}

// Games resolves flip, roll and raid wagers. Each resolver draws once,
// maps the draw to a single Ledger mutation and returns the outcome.
// Balances feeding a raid amount are read fresh immediately before the
// transfer; the Ledger's own transaction is the real guard against
// races.
type Games struct {
	ledger *Ledger
	rules  Rules

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGames builds a resolver set. src may be nil, in which case a
// time-seeded source is used; tests pass a fixed one.
func NewGames(l *Ledger, rules Rules, src rand.Source) *Games {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Games{ledger: l, rules: rules, rng: rand.New(src)}
}

// FlipResult is the outcome of a coin flip wager.
type FlipResult struct {
	Won        bool
	Amount     int64
	NewBalance int64
}

// Flip wagers stake on a coin flip: win credits the stake, loss debits
// it. The caller pre-checks the balance for a friendly message; Debit
// re-validates atomically regardless.
func (g *Games) Flip(ctx context.Context, userID string, stake int64) (FlipResult, error) {
	if stake <= 0 {
		return FlipResult{}, ErrInvalidAmount
	}
	won := g.drawFloat() < g.rules.FlipWinChance
	var (
		newBal int64
		err    error
	)
	if won {
		newBal, err = g.ledger.Credit(ctx, userID, stake, "flip:win")
	} else {
		newBal, err = g.ledger.Debit(ctx, userID, stake, "flip:loss")
	}
	if err != nil {
		return FlipResult{}, err
	}
	return FlipResult{Won: won, Amount: stake, NewBalance: newBal}, nil
}

// RollResult is the outcome of a dice roll wager.
type RollResult struct {
	Face       int
	Won        bool
	Amount     int64
	NewBalance int64
}

// Roll wagers stake on a die: rolling the win face pays
// stake*(multiplier-1) on top of the kept stake, any other face loses
// the stake.
func (g *Games) Roll(ctx context.Context, userID string, stake int64) (RollResult, error) {
	if stake <= 0 {
		return RollResult{}, ErrInvalidAmount
	}
	face := g.drawFace()
	won := face == g.rules.RollWinFace
	var (
		amount int64
		newBal int64
		err    error
	)
	if won {
		amount = rollPayout(stake, g.rules.RollMultiplier)
		newBal, err = g.ledger.Credit(ctx, userID, amount, "roll:win")
	} else {
		amount = stake
		newBal, err = g.ledger.Debit(ctx, userID, stake, "roll:loss")
	}
	if err != nil {
		return RollResult{}, err
	}
	return RollResult{Face: face, Won: won, Amount: amount, NewBalance: newBal}, nil
}

// RaidResult is the outcome of a raid attempt. Amount is zero when the
// losing side had nothing worth taking; no transfer happened then, but
// the attempt still counts against the raider's cooldown.
type RaidResult struct {
	Won           bool
	Amount        int64
	RaiderBalance int64
	TargetBalance int64
}

// Raid pits raider against target. Rejected outright when either party
// is in safe mode, on self-raids, or when either balance is under the
// configured minimum (exactly the minimum passes). On success a cut of
// the target's balance moves to the raider; on failure the same cut of
// the raider's balance moves to the target.
func (g *Games) Raid(ctx context.Context, raiderID, targetID string) (RaidResult, error) {
	if raiderID == targetID {
		return RaidResult{}, ErrSelfRaid
	}
	raider, err := g.ledger.Account(ctx, raiderID)
	if err != nil {
		return RaidResult{}, err
	}
	target, err := g.ledger.Account(ctx, targetID)
	if err != nil {
		return RaidResult{}, err
	}
	if raider.Safe {
		return RaidResult{}, ErrSafeModeActive
	}
	if target.Safe {
		return RaidResult{}, ErrTargetSafe
	}
	if raider.Balance < g.rules.RaidMinBalance || target.Balance < g.rules.RaidMinBalance {
		return RaidResult{}, ErrBalanceTooLow
	}

	won := g.drawFloat() < g.rules.RaidSuccessChance
	var amount int64
	if won {
		amount = raidAmount(target.Balance, g.rules.RaidMaxPercent)
	} else {
		amount = raidAmount(raider.Balance, g.rules.RaidMaxPercent)
	}
	if amount == 0 {
		return RaidResult{
			Won:           won,
			RaiderBalance: raider.Balance,
			TargetBalance: target.Balance,
		}, nil
	}

	var tr TransferResult
	if won {
		tr, err = g.ledger.Transfer(ctx, targetID, raiderID, amount, "raid")
		if err != nil {
			return RaidResult{}, err
		}
		return RaidResult{Won: true, Amount: amount, RaiderBalance: tr.ToBalance, TargetBalance: tr.FromBalance}, nil
	}
	tr, err = g.ledger.Transfer(ctx, raiderID, targetID, amount, "raid")
	if err != nil {
		return RaidResult{}, err
	}
	return RaidResult{Won: false, Amount: amount, RaiderBalance: tr.FromBalance, TargetBalance: tr.ToBalance}, nil
}

func (g *Games) drawFloat() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func (g *Games) drawFace() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(6) + 1
}

func rollPayout(stake, multiplier int64) int64 {
	return stake * (multiplier - 1)
}

func raidAmount(balance int64, pct float64) int64 {
	amount := int64(math.Floor(float64(balance) * pct))
	if amount > balance {
		amount = balance
	}
	return amount
}
