package store

import (
	"sync"

	"github.com/oatsaysai/guild-bank-in-discord/internal/models"
)

// MemoryStore is an in-memory implementation of BalanceStore and
// RequestStore, used in tests in place of the file or Postgres backends.
type MemoryStore struct {
	mu       sync.Mutex
	balances map[string]int64
	requests map[string]models.Request
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		balances: make(map[string]int64),
		requests: make(map[string]models.Request),
	}
}

func (m *MemoryStore) GetBalance(userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[userID], nil
}

func (m *MemoryStore) SetBalance(userID string, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[userID] = amount
	return nil
}

func (m *MemoryStore) ListBalances() (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int64, len(m.balances))
	for k, v := range m.balances {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryStore) GetRequest(id string) (models.Request, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.requests[id]
	return req, ok, nil
}

func (m *MemoryStore) PutRequest(id string, req models.Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[id] = req
	return nil
}

func (m *MemoryStore) DeleteRequest(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.requests, id)
	return nil
}

func (m *MemoryStore) ListRequests() ([]models.PendingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedRequests(m.requests), nil
}
