package store

import (
	"github.com/oatsaysai/guild-bank-in-discord/internal/models"
)

// BalanceStore persists the mapping from Discord user ID to balance in
// copper. Absent users read as zero; that is not an error.
type BalanceStore interface {
	GetBalance(userID string) (int64, error)
	SetBalance(userID string, amount int64) error
	ListBalances() (map[string]int64, error)
}

// RequestStore persists pending currency requests keyed by request ID.
// ListRequests returns records in ascending request-ID order; request IDs
// are Discord snowflakes, so this is submission order. Reaction matching
// depends on this ordering for its first-match tie-break.
type RequestStore interface {
	GetRequest(id string) (models.Request, bool, error)
	PutRequest(id string, req models.Request) error
	DeleteRequest(id string) error
	ListRequests() ([]models.PendingRequest, error)
}
