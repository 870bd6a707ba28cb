package commands

import (
	"github.com/oatsaysai/guild-bank-in-discord/internal/discord/handlers"
)

// RegisterRequestCommands registers the request/approval workflow commands
func RegisterRequestCommands() {
	// Register the request command
	registerCommand(CommandDefinition{
		Name:        "request",
		Description: "Request currency from the guild bank, pending moderator approval",
		Usage:       "!request <amount> <reason>",
		Examples: []string{
			"!request 25000 repair bill after the raid",
		},
		Handler: handlers.HandleRequest,
	})

	// Register the rescanrequests command (admin only)
	registerCommand(CommandDefinition{
		Name:        "rescanrequests",
		Description: "Repost review messages for all pending requests (admin only)",
		Usage:       "!rescanrequests",
		Examples: []string{
			"!rescanrequests",
		},
		Handler: handlers.HandleRescanRequests,
	})
}
