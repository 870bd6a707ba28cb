package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// The embed footer is the wire contract between the request publisher and
// the reaction handler: it is the only link from a review post back to a
// pending request. The format must stay parseable by ParseRequestFooter.

const (
	footerUserKey   = "User ID"
	footerAmountKey = "Request Amount"
)

// BuildRequestFooter encodes a request's identity into embed footer text.
func BuildRequestFooter(userID string, amount int64) string {
	return fmt.Sprintf("%s: %s | %s: %d", footerUserKey, userID, footerAmountKey, amount)
}

// ParseRequestFooter recovers (userID, amount) from a review post's footer.
// Returns false for anything that does not match the contract; callers treat
// that as "not a review post" and ignore the event.
func ParseRequestFooter(text string) (string, int64, bool) {
	parts := make(map[string]string)
	for _, kv := range strings.Split(text, "|") {
		pair := strings.SplitN(kv, ":", 2)
		if len(pair) != 2 {
			return "", 0, false
		}
		parts[strings.TrimSpace(pair[0])] = strings.TrimSpace(pair[1])
	}

	userID, ok := parts[footerUserKey]
	if !ok || userID == "" {
		return "", 0, false
	}
	amountStr, ok := parts[footerAmountKey]
	if !ok {
		return "", 0, false
	}
	amount, err := strconv.ParseInt(amountStr, 10, 64)
	if err != nil {
		return "", 0, false
	}
	return userID, amount, true
}
