package bank

import (
	"sync"
	"testing"

	"github.com/oatsaysai/guild-bank-in-discord/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBank(t *testing.T) *Bank {
	t.Helper()
	mem := store.NewMemoryStore()
	return New(mem, mem)
}

func TestBalance_AbsentUserIsZero(t *testing.T) {
	b := newTestBank(t)

	balance, err := b.Balance("nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestApplyDelta(t *testing.T) {
	b := newTestBank(t)

	updated, err := b.ApplyDelta("alice", 500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), updated)

	updated, err = b.ApplyDelta("alice", -200)
	require.NoError(t, err)
	assert.Equal(t, int64(300), updated)
}

func TestTransfer_ExactBalance(t *testing.T) {
	b := newTestBank(t)
	_, err := b.ApplyDelta("alice", 500)
	require.NoError(t, err)

	require.NoError(t, b.Transfer("alice", "bob", 500))

	aliceBalance, err := b.Balance("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(0), aliceBalance)

	bobBalance, err := b.Balance("bob")
	require.NoError(t, err)
	assert.Equal(t, int64(500), bobBalance)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	b := newTestBank(t)
	_, err := b.ApplyDelta("alice", 100)
	require.NoError(t, err)

	err = b.Transfer("alice", "bob", 500)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Neither balance changed.
	aliceBalance, err := b.Balance("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), aliceBalance)

	bobBalance, err := b.Balance("bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), bobBalance)
}

func TestTransfer_InvalidAmount(t *testing.T) {
	b := newTestBank(t)
	_, err := b.ApplyDelta("alice", 100)
	require.NoError(t, err)

	assert.ErrorIs(t, b.Transfer("alice", "bob", 0), ErrInvalidAmount)
	assert.ErrorIs(t, b.Transfer("alice", "bob", -5), ErrInvalidAmount)

	aliceBalance, err := b.Balance("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), aliceBalance)
}

func TestTransfer_SelfTransferNetsToZero(t *testing.T) {
	b := newTestBank(t)
	_, err := b.ApplyDelta("alice", 300)
	require.NoError(t, err)

	require.NoError(t, b.Transfer("alice", "alice", 200))

	aliceBalance, err := b.Balance("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(300), aliceBalance)
}

func TestApplyDelta_ConcurrentNoLostUpdates(t *testing.T) {
	b := newTestBank(t)

	// Concurrent handlers racing on one balance must not lose increments:
	// every read-modify-write cycle runs under the bank's mutex.
	const (
		goroutines = 8
		increments = 50
	)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				_, err := b.ApplyDelta("alice", 1)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	balance, err := b.Balance("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(goroutines*increments), balance)
}

func TestDeduct_ClampsAtZero(t *testing.T) {
	b := newTestBank(t)
	_, err := b.ApplyDelta("alice", 100)
	require.NoError(t, err)

	updated, err := b.Deduct("alice", 500)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)

	_, err = b.Deduct("alice", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
