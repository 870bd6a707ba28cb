package bank

import (
	"fmt"

	"github.com/oatsaysai/guild-bank-in-discord/internal/models"
)

// SubmitRequest records a pending currency request under the given ID (the
// Discord message ID of the submitting command, so IDs are unique and never
// reused). Amount is stored as given; the moderator reviewing the post is
// the validation step.
func (b *Bank) SubmitRequest(id, userID string, amount int64, reason string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	req := models.Request{UserID: userID, Amount: amount, Reason: reason}
	if err := b.requests.PutRequest(id, req); err != nil {
		return fmt.Errorf("error storing request: %w", err)
	}
	return nil
}

// PendingRequests returns all unresolved requests in store list order.
func (b *Bank) PendingRequests() ([]models.PendingRequest, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests.ListRequests()
}

// ClaimRequest atomically finds and removes the first pending request whose
// (user, amount) pair matches, in store list order. The find-and-delete runs
// as one critical section, so two reactions racing on the same post resolve
// it at most once; the loser sees no match. Returns false when nothing
// matches.
func (b *Bank) ClaimRequest(userID string, amount int64) (models.PendingRequest, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	pending, err := b.requests.ListRequests()
	if err != nil {
		return models.PendingRequest{}, false, fmt.Errorf("error listing requests: %w", err)
	}

	for _, p := range pending {
		if p.Request.UserID == userID && p.Request.Amount == amount {
			if err := b.requests.DeleteRequest(p.ID); err != nil {
				return models.PendingRequest{}, false, fmt.Errorf("error deleting request %s: %w", p.ID, err)
			}
			return p, true, nil
		}
	}
	return models.PendingRequest{}, false, nil
}

// Grant credits amount to the user directly. Approval of a request is a
// grant, not a transfer: there is no sender whose funds could run short.
func (b *Bank) Grant(userID string, amount int64) (int64, error) {
	return b.ApplyDelta(userID, amount)
}
