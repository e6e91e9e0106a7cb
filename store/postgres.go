package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"CoinBot/economy"

	"github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    user_id TEXT PRIMARY KEY,
    balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
    safe BOOLEAN NOT NULL DEFAULT FALSE,
    last_safe_toggle TIMESTAMPTZ,
    pets TEXT[] NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS cooldowns (
    user_id TEXT NOT NULL,
    action TEXT NOT NULL,
    last_used_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (user_id, action)
);

CREATE TABLE IF NOT EXISTS ledger_entries (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    amount BIGINT NOT NULL,
    reason TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// txRetries bounds how often RunTx retries a serialization conflict
// before giving up and surfacing the failure.
const txRetries = 3

// Postgres implements economy.Store on a Postgres database. Mutations
// lock rows with SELECT ... FOR UPDATE, re-read state inside the
// transaction and commit, so concurrent writers serialize per account.
// Transactions run at serializable isolation; RunTx absorbs the
// resulting conflicts through its retry loop.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(url string) (*Postgres, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Close() error { return p.db.Close() }

func (p *Postgres) RunTx(ctx context.Context, fn func(tx economy.Tx) error) error {
	var last error
	for attempt := 0; attempt < txRetries; attempt++ {
		err := p.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		last = err
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 25 * time.Millisecond):
		}
	}
	return fmt.Errorf("transaction retry budget exhausted: %w", last)
}

func (p *Postgres) runOnce(ctx context.Context, fn func(tx economy.Tx) error) error {
	// FOR UPDATE on a row that does not exist yet locks nothing, so two
	// transactions creating the same account could both miss the read
	// and upsert stale balances over each other. Serializable isolation
	// turns that into a 40001, which RunTx retries.
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(&pgTx{ctx: ctx, tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

// retryable reports whether the error is a serialization failure or
// deadlock, the two SQLSTATEs Postgres asks clients to retry.
func retryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "40001" || pqErr.Code == "40P01"
}

type pgTx struct {
	ctx context.Context
	tx  *sql.Tx
}

func (t *pgTx) Account(userID string) (*economy.Account, error) {
	a := economy.Account{UserID: userID}
	var (
		lastToggle sql.NullTime
		pets       pq.StringArray
	)
	err := t.tx.QueryRowContext(t.ctx, `
		SELECT balance, safe, last_safe_toggle, pets
		FROM accounts WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&a.Balance, &a.Safe, &lastToggle, &pets)
	if err == sql.ErrNoRows {
		return nil, economy.ErrNoAccount
	}
	if err != nil {
		return nil, err
	}
	if lastToggle.Valid {
		at := lastToggle.Time
		a.LastSafeToggle = &at
	}
	a.Pets = []string(pets)
	return &a, nil
}

func (t *pgTx) PutAccount(a *economy.Account) error {
	var lastToggle sql.NullTime
	if a.LastSafeToggle != nil {
		lastToggle = sql.NullTime{Time: *a.LastSafeToggle, Valid: true}
	}
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO accounts (user_id, balance, safe, last_safe_toggle, pets)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			balance = EXCLUDED.balance,
			safe = EXCLUDED.safe,
			last_safe_toggle = EXCLUDED.last_safe_toggle,
			pets = EXCLUDED.pets
	`, a.UserID, a.Balance, a.Safe, lastToggle, pq.Array(a.Pets))
	return err
}

func (t *pgTx) Cooldown(userID string, action economy.Action) (time.Time, bool, error) {
	var at time.Time
	err := t.tx.QueryRowContext(t.ctx, `
		SELECT last_used_at FROM cooldowns
		WHERE user_id = $1 AND action = $2
	`, userID, string(action)).Scan(&at)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}

func (t *pgTx) PutCooldown(userID string, action economy.Action, at time.Time) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO cooldowns (user_id, action, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, action) DO UPDATE SET
			last_used_at = EXCLUDED.last_used_at
	`, userID, string(action), at)
	return err
}

func (t *pgTx) AppendEntry(e economy.Entry) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO ledger_entries (id, user_id, amount, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, e.ID, e.UserID, e.Amount, e.Reason, e.CreatedAt)
	return err
}

func (t *pgTx) TopBalances(limit int) ([]economy.Account, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := t.tx.QueryContext(t.ctx, `
		SELECT user_id, balance, safe FROM accounts
		ORDER BY balance DESC, user_id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []economy.Account
	for rows.Next() {
		var a economy.Account
		if err := rows.Scan(&a.UserID, &a.Balance, &a.Safe); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
