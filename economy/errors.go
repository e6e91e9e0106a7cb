package economy

import (
	"errors"
	"fmt"
	"time"
)

// The error taxonomy is closed: callers branch on these with errors.Is /
// errors.As, never by inspecting message text.
var (
	ErrInvalidAmount  = errors.New("amount must be a positive integer")
	ErrSelfTransfer   = errors.New("cannot transfer coins to yourself")
	ErrAlreadyInState = errors.New("safe mode is already set to that")
	ErrSelfRaid       = errors.New("cannot raid yourself")
	ErrSafeModeActive = errors.New("raider is in safe mode")
	ErrTargetSafe     = errors.New("target is in safe mode")
	ErrBalanceTooLow  = errors.New("balance below the raid minimum")
)

// InsufficientFundsError reports a debit the account cannot cover. No
// mutation has happened when it is returned.
type InsufficientFundsError struct {
	Needed    int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %d, have %d", e.Needed, e.Available)
}

// CooldownError reports an action attempted before its cooldown elapsed.
type CooldownError struct {
	Action    Action
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s is cooling down for another %s", e.Action, e.Remaining)
}

// StorageError wraps an infrastructure failure from the store: the
// transaction layer was unreachable or its retry budget ran out. It is
// not locally recoverable; the dispatch layer reports a generic failure.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage failure: " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

// wrapStorage classifies an error coming back from RunTx: expected
// domain outcomes pass through untouched, anything else is storage-class.
func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	var (
		ife *InsufficientFundsError
		ce  *CooldownError
		se  *StorageError
	)
	switch {
	case errors.As(err, &ife), errors.As(err, &ce), errors.As(err, &se):
		return err
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrSelfTransfer),
		errors.Is(err, ErrAlreadyInState),
		errors.Is(err, ErrSelfRaid),
		errors.Is(err, ErrSafeModeActive),
		errors.Is(err, ErrTargetSafe),
		errors.Is(err, ErrBalanceTooLow):
		return err
	}
	return &StorageError{Err: err}
}
