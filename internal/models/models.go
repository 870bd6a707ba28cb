package models

// Request represents a pending currency request awaiting moderator review.
// The map key in the request store is the request ID (the Discord message ID
// of the command that created it), so the record itself does not repeat it.
type Request struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// PendingRequest pairs a request with its store key, in store list order.
type PendingRequest struct {
	ID      string
	Request Request
}
