package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oatsaysai/guild-bank-in-discord/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(
		filepath.Join(dir, "balances.json"),
		filepath.Join(dir, "requests.json"),
	)
}

func TestFileStore_MissingFilesReadAsEmpty(t *testing.T) {
	fs := newTestFileStore(t)

	balance, err := fs.GetBalance("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	balances, err := fs.ListBalances()
	require.NoError(t, err)
	assert.Empty(t, balances)

	pending, err := fs.ListRequests()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestFileStore_BalancesPersistAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	balancesPath := filepath.Join(dir, "balances.json")
	requestsPath := filepath.Join(dir, "requests.json")

	fs := NewFileStore(balancesPath, requestsPath)
	require.NoError(t, fs.SetBalance("alice", 12500))
	require.NoError(t, fs.SetBalance("bob", 300))

	// A new store over the same files sees the same data.
	reopened := NewFileStore(balancesPath, requestsPath)
	balance, err := reopened.GetBalance("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(12500), balance)

	balances, err := reopened.ListBalances()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"alice": 12500, "bob": 300}, balances)
}

func TestFileStore_RequestLifecycle(t *testing.T) {
	fs := newTestFileStore(t)

	req := models.Request{UserID: "alice", Amount: 250, Reason: "repairs"}
	require.NoError(t, fs.PutRequest("100", req))

	got, ok, err := fs.GetRequest("100")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, req, got)

	require.NoError(t, fs.DeleteRequest("100"))

	_, ok, err = fs.GetRequest("100")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is a no-op.
	require.NoError(t, fs.DeleteRequest("100"))
}

func TestFileStore_ListRequestsOrder(t *testing.T) {
	fs := newTestFileStore(t)

	// Inserted out of order; listing returns ascending snowflake order.
	require.NoError(t, fs.PutRequest("9", models.Request{UserID: "c", Amount: 3}))
	require.NoError(t, fs.PutRequest("102", models.Request{UserID: "b", Amount: 2}))
	require.NoError(t, fs.PutRequest("100", models.Request{UserID: "a", Amount: 1}))

	pending, err := fs.ListRequests()
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "9", pending[0].ID)
	assert.Equal(t, "100", pending[1].ID)
	assert.Equal(t, "102", pending[2].ID)
}

func TestFileStore_ListRequestsOrder_UnequalDigitCounts(t *testing.T) {
	fs := newTestFileStore(t)

	// Discord snowflakes have grown from 17 to 19 digits. A 17-digit ID is
	// older than any 18-digit ID but sorts after it lexicographically, so
	// the length-first comparison must keep it ahead.
	require.NoError(t, fs.PutRequest("100000000000000000", models.Request{UserID: "b", Amount: 2}))
	require.NoError(t, fs.PutRequest("99999999999999999", models.Request{UserID: "a", Amount: 1}))

	pending, err := fs.ListRequests()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "99999999999999999", pending[0].ID)
	assert.Equal(t, "100000000000000000", pending[1].ID)
}

func TestFileStore_CorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	balancesPath := filepath.Join(dir, "balances.json")
	require.NoError(t, os.WriteFile(balancesPath, []byte("not json"), 0644))

	fs := NewFileStore(balancesPath, filepath.Join(dir, "requests.json"))
	_, err := fs.GetBalance("alice")
	assert.Error(t, err)
}
