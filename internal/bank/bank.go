// Package bank implements the guild ledger: balances, peer transfers and
// the request/approval workflow. All read-modify-write cycles on the
// underlying stores run under a single mutex, so concurrent Discord event
// handlers observe the same behavior as sequential processing.
package bank

import (
	"errors"
	"fmt"
	"sync"

	"github.com/oatsaysai/guild-bank-in-discord/internal/store"
)

var (
	// ErrInvalidAmount is returned for zero or negative transfer amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds is returned when the sender cannot cover a transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Bank serializes all ledger and request operations over the injected stores.
type Bank struct {
	mu       sync.Mutex
	balances store.BalanceStore
	requests store.RequestStore
}

// New creates a Bank over the given stores.
func New(balances store.BalanceStore, requests store.RequestStore) *Bank {
	return &Bank{
		balances: balances,
		requests: requests,
	}
}

// Balance returns the user's balance in copper; absent users have 0.
func (b *Bank) Balance(userID string) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances.GetBalance(userID)
}

// ApplyDelta adds delta (which may be negative) to the user's balance and
// persists it. No floor is applied; callers enforce their own preconditions.
func (b *Bank) ApplyDelta(userID string, delta int64) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.applyDeltaLocked(userID, delta)
}

func (b *Bank) applyDeltaLocked(userID string, delta int64) (int64, error) {
	current, err := b.balances.GetBalance(userID)
	if err != nil {
		return 0, err
	}
	updated := current + delta
	if err := b.balances.SetBalance(userID, updated); err != nil {
		return 0, err
	}
	return updated, nil
}

// Transfer moves amount from one user to another. The sender must hold at
// least amount; on failure neither balance is touched. Self-transfers are
// permitted and net to zero.
func (b *Bank) Transfer(fromID, toID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	fromBalance, err := b.balances.GetBalance(fromID)
	if err != nil {
		return fmt.Errorf("error reading sender balance: %w", err)
	}
	if fromBalance < amount {
		return ErrInsufficientFunds
	}

	if _, err := b.applyDeltaLocked(fromID, -amount); err != nil {
		return fmt.Errorf("error debiting sender: %w", err)
	}
	if _, err := b.applyDeltaLocked(toID, amount); err != nil {
		return fmt.Errorf("error crediting receiver: %w", err)
	}
	return nil
}

// Deduct removes up to amount from the user's balance, clamping at zero.
// Returns the resulting balance.
func (b *Bank) Deduct(userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	current, err := b.balances.GetBalance(userID)
	if err != nil {
		return 0, err
	}
	updated := current - amount
	if updated < 0 {
		updated = 0
	}
	if err := b.balances.SetBalance(userID, updated); err != nil {
		return 0, err
	}
	return updated, nil
}
