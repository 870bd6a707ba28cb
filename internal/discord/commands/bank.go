package commands

import (
	"github.com/oatsaysai/guild-bank-in-discord/internal/discord/handlers"
)

// RegisterBankCommands registers all ledger-related commands
func RegisterBankCommands() {
	// Register the balance command
	registerCommand(CommandDefinition{
		Name:        "balance",
		Description: "Show your current gold/silver/copper balance",
		Usage:       "!balance",
		Examples: []string{
			"!balance",
		},
		Handler: handlers.HandleBalance,
	})

	// Register the give command
	registerCommand(CommandDefinition{
		Name:        "give",
		Description: "Transfer currency from your balance to another user",
		Usage:       "!give @user <amount>",
		Examples: []string{
			"!give @user 12500",
		},
		Handler: handlers.HandleGive,
	})

	// Register the grant command (admin only)
	registerCommand(CommandDefinition{
		Name:        "grant",
		Description: "Grant currency to a user (admin only)",
		Usage:       "!grant @user <amount> [reason]",
		Examples: []string{
			"!grant @user 10000 raid payout",
		},
		Handler: handlers.HandleGrant,
	})

	// Register the take command (admin only)
	registerCommand(CommandDefinition{
		Name:        "take",
		Description: "Deduct currency from a user (admin only)",
		Usage:       "!take @user <amount> [reason]",
		Examples: []string{
			"!take @user 5000 repair fine",
		},
		Handler: handlers.HandleTake,
	})

	// Register the transactions command
	registerCommand(CommandDefinition{
		Name:        "transactions",
		Description: "Show your transaction history",
		Usage:       "!transactions",
		Examples: []string{
			"!transactions",
		},
		Handler: handlers.HandleTransactions,
	})
}
