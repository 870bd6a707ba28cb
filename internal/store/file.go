package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/oatsaysai/guild-bank-in-discord/internal/models"
)

// FileStore keeps balances and requests in two JSON documents, each read and
// rewritten wholesale on every mutation. A mutex serializes the
// read-modify-write cycle so concurrent handlers cannot lose updates.
type FileStore struct {
	mu           sync.Mutex
	balancesPath string
	requestsPath string
}

// NewFileStore creates a file-backed store. The files are created lazily on
// first write; a missing file reads as an empty mapping.
func NewFileStore(balancesPath, requestsPath string) *FileStore {
	return &FileStore{
		balancesPath: balancesPath,
		requestsPath: requestsPath,
	}
}

func readJSONFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func writeJSONFile(path string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (f *FileStore) loadBalances() (map[string]int64, error) {
	balances := make(map[string]int64)
	if err := readJSONFile(f.balancesPath, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

func (f *FileStore) loadRequests() (map[string]models.Request, error) {
	requests := make(map[string]models.Request)
	if err := readJSONFile(f.requestsPath, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetBalance returns the persisted balance, or 0 if the user has no entry.
func (f *FileStore) GetBalance(userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	balances, err := f.loadBalances()
	if err != nil {
		return 0, err
	}
	return balances[userID], nil
}

// SetBalance sets the user's balance and rewrites the whole document.
func (f *FileStore) SetBalance(userID string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	balances, err := f.loadBalances()
	if err != nil {
		return err
	}
	balances[userID] = amount
	return writeJSONFile(f.balancesPath, balances)
}

// ListBalances returns a copy of the full balance mapping.
func (f *FileStore) ListBalances() (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.loadBalances()
}

// GetRequest returns the request with the given ID, if present.
func (f *FileStore) GetRequest(id string) (models.Request, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	requests, err := f.loadRequests()
	if err != nil {
		return models.Request{}, false, err
	}
	req, ok := requests[id]
	return req, ok, nil
}

// PutRequest stores a pending request and rewrites the whole document.
func (f *FileStore) PutRequest(id string, req models.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	requests, err := f.loadRequests()
	if err != nil {
		return err
	}
	requests[id] = req
	return writeJSONFile(f.requestsPath, requests)
}

// DeleteRequest removes a pending request. Deleting an absent ID is a no-op.
func (f *FileStore) DeleteRequest(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	requests, err := f.loadRequests()
	if err != nil {
		return err
	}
	delete(requests, id)
	return writeJSONFile(f.requestsPath, requests)
}

// ListRequests returns all pending requests in ascending request-ID order.
func (f *FileStore) ListRequests() ([]models.PendingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	requests, err := f.loadRequests()
	if err != nil {
		return nil, err
	}
	return sortedRequests(requests), nil
}

func sortedRequests(requests map[string]models.Request) []models.PendingRequest {
	ids := make([]string, 0, len(requests))
	for id := range requests {
		ids = append(ids, id)
	}
	// Snowflake IDs of equal length sort chronologically as strings; compare
	// by length first so shorter (older epoch) IDs stay ahead.
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) < len(ids[j])
		}
		return ids[i] < ids[j]
	})

	result := make([]models.PendingRequest, 0, len(ids))
	for _, id := range ids {
		result = append(result, models.PendingRequest{ID: id, Request: requests[id]})
	}
	return result
}
